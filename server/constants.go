package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlSetting describes setting name URL param.
	urlSetting muxKeys = "setting"
	// urlAction describes video action URL param.
	urlAction muxKeys = "action"
	// queryFilter describes events filter query param.
	queryFilter = "filter"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
	// Maximum accepted request body.
	maxBodySize = 64 * 1024
)
