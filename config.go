package carvalue

import "time"

/*
shared settings for the car valuation client:
- common constants - default timeout, default development address
- common maps - used to validate enum values read from the environment
*/

// common constants
const (
	// DefaultRequestTimeout bounds a price prediction call.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultDevBaseURL is where the prediction backend listens during local development.
	DefaultDevBaseURL = "http://localhost:5000"

	// RequestIDHeader carries the per-call id to the backend.
	RequestIDHeader = "X-Request-ID"

	// TrainingFileField is the multipart field name the backend reads training data from.
	TrainingFileField = "file"
)

// common maps - used to validate enum values
var ValidEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"staging": true,
	"prod":    true,
}

// local environments fall back to DefaultDevBaseURL when no address is configured
var LocalEnvs = map[string]bool{
	"dev":  true,
	"test": true,
}

// values the backend accepts for the categorical CarData fields
var ValidFuelTypes = map[string]bool{
	"Petrol": true,
	"Diesel": true,
	"CNG":    true,
}

var ValidSellerTypes = map[string]bool{
	"Dealer":     true,
	"Individual": true,
}

var ValidTransmissions = map[string]bool{
	"Manual":    true,
	"Automatic": true,
}
