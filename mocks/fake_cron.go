//+build !release

package mocks

import (
	"sync"
)

// FakeCron is a fake cron provider.
// Jobs are executed only with Run.
type FakeCron struct {
	sync.Mutex
	jobs map[int]func()
	next int
}

// AddFunc registers a new job.
func (c *FakeCron) AddFunc(spec string, cmd func()) (int, error) {
	c.Lock()
	defer c.Unlock()

	c.next++
	c.jobs[c.next] = cmd
	return c.next, nil
}

// RemoveFunc removes the job.
func (c *FakeCron) RemoveFunc(id int) {
	c.Lock()
	defer c.Unlock()
	delete(c.jobs, id)
}

// Stop does nothing.
func (c *FakeCron) Stop() {
}

// Run executes all registered jobs.
func (c *FakeCron) Run() {
	c.Lock()
	jobs := make([]func(), 0, len(c.jobs))
	for _, v := range c.jobs {
		jobs = append(jobs, v)
	}
	c.Unlock()

	for _, v := range jobs {
		v()
	}
}

// Jobs returns number of registered jobs.
func (c *FakeCron) Jobs() int {
	c.Lock()
	defer c.Unlock()
	return len(c.jobs)
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *FakeCron {
	return &FakeCron{jobs: make(map[int]func())}
}
