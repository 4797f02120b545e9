package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests that un-register works as expected.
func TestCron(t *testing.T) {
	prov := NewCron()
	defer prov.Stop()

	var called int32
	var id int
	idCh := make(chan int, 1)
	id, err := prov.AddFunc("@every 1s", func() {
		if 2 == atomic.AddInt32(&called, 1) {
			prov.RemoveFunc(<-idCh)
		}
	})
	require.NoError(t, err)
	idCh <- id

	time.Sleep(4 * time.Second)
	assert.Equal(t, int32(2), atomic.LoadInt32(&called))
}

// Tests invalid schedule.
func TestCronWrongSpec(t *testing.T) {
	prov := NewCron()
	defer prov.Stop()

	_, err := prov.AddFunc("every second", func() {})
	assert.Error(t, err)
}
