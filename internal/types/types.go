// Package types holds the request and response shapes exchanged with the prediction backend.
//
// Fields the backend may omit are pointers; nil means the backend did not send the field.
package types

// CarData is the vehicle description sent to the predict endpoint.
// Values are passed through unchecked - the backend decides what is acceptable.
type CarData struct {
	Year         int     `json:"Year"`
	PresentPrice float64 `json:"Present_Price"`
	KmsDriven    int     `json:"Kms_Driven"`
	FuelType     string  `json:"Fuel_Type"`
	SellerType   string  `json:"Seller_Type"`
	Transmission string  `json:"Transmission"`
	Owner        int     `json:"Owner"`
}

// Valuation is the predict response.
type Valuation struct {
	EstimatedPrice float64           `json:"estimatedPrice"`
	PriceRange     *PriceRange       `json:"priceRange,omitempty"`
	Confidence     *float64          `json:"confidence,omitempty"`
	Message        *string           `json:"message,omitempty"`
	Details        *ValuationDetails `json:"details,omitempty"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ValuationDetails struct {
	VehicleAge         int     `json:"vehicleAge"`
	DepreciationFactor float64 `json:"depreciationFactor"`
	MileageCategory    string  `json:"mileageCategory"`
}

// HealthStatus is the health check response.
type HealthStatus struct {
	Status       string  `json:"status"`
	ModelTrained bool    `json:"model_trained"`
	Message      *string `json:"message,omitempty"`
}

// ModelInfo describes the model currently loaded by the backend.
// Info is only present once the model has been trained.
type ModelInfo struct {
	Trained bool          `json:"trained"`
	Message *string       `json:"message,omitempty"`
	Info    *ModelDetails `json:"info,omitempty"`
}

type ModelDetails struct {
	Algorithm    string           `json:"algorithm"`
	NFeatures    int              `json:"n_features"`
	FeatureNames []string         `json:"feature_names"`
	Metrics      *TrainingMetrics `json:"metrics,omitempty"`
	Trained      bool             `json:"trained"`
}

// TrainingMetrics are the evaluation scores of the last training run.
// BestParams is hyperparameter output from the backend's search and has no fixed shape.
type TrainingMetrics struct {
	MAE        float64        `json:"mae"`
	MSE        float64        `json:"mse"`
	RMSE       float64        `json:"rmse"`
	R2Score    float64        `json:"r2_score"`
	BestParams map[string]any `json:"best_params,omitempty"`
}

// TrainingResult is the train response.
type TrainingResult struct {
	Message string          `json:"message"`
	Metrics TrainingMetrics `json:"metrics"`
}
