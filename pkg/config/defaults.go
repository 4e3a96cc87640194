package config

import "reception/pkg/logger"

const (
	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.JSON

	// Region used to interpret client phone numbers written without a
	// country prefix. The sample data of the reception desk is Colombian.
	DefaultPhoneRegion = "CO"
	DefaultCurrency    = "COP"
)
