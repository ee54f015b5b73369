package backendtest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"slices"

	carvalue "github.com/carvalue/carvalue-client"
	"github.com/carvalue/carvalue-client/internal/apperrors"
	"github.com/carvalue/carvalue-client/internal/response"
	"github.com/carvalue/carvalue-client/internal/types"
)

const algorithm = "Gradient Boosting Regressor"

// the CarData wire names, all required by the predict handler
var requiredFields = []string{"Year", "Present_Price", "Kms_Driven", "Fuel_Type", "Seller_Type", "Transmission", "Owner"}

// columns of the training CSV that are not model inputs
var nonFeatureColumns = []string{"Car_Name", "Selling_Price"}

// DefaultFeatures are the encoded feature names reported for a pre-trained model
func DefaultFeatures() []string {
	return []string{
		"Year", "Present_Price", "Kms_Driven", "Owner",
		"Fuel_Type_Diesel", "Fuel_Type_Petrol", "Seller_Type_Individual", "Transmission_Manual",
	}
}

// DefaultMetrics are the scores reported after training
func DefaultMetrics() types.TrainingMetrics {
	return types.TrainingMetrics{
		MAE:     0.62,
		MSE:     0.95,
		RMSE:    0.97,
		R2Score: 0.92,
		BestParams: map[string]any{
			"learning_rate": 0.1,
			"max_depth":     3,
			"n_estimators":  200,
		},
	}
}

func (b *Backend) handleHealth(w http.ResponseWriter, r *http.Request) {
	metrics, _ := b.model()
	message := "car valuation backend is running"

	response.RespondWithJSON(w, http.StatusOK, types.HealthStatus{
		Status:       "ok",
		Message:      &message,
		ModelTrained: metrics != nil,
	})
}

func (b *Backend) handlePredict(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.RespondWithError(w, r, b.logger, http.StatusBadRequest, apperrors.MsgMalformedBody)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		response.RespondWithError(w, r, b.logger, http.StatusBadRequest, apperrors.MsgMalformedBody)
		return
	}
	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			response.RespondWithError(w, r, b.logger, http.StatusBadRequest, fmt.Sprintf(apperrors.MsgMissingField, field))
			return
		}
	}

	var car types.CarData
	if err := json.Unmarshal(body, &car); err != nil {
		response.RespondWithError(w, r, b.logger, http.StatusBadRequest, apperrors.MsgMalformedBody)
		return
	}

	currentYear := b.now().Year()
	if msg := validateCar(car, currentYear); msg != "" {
		response.RespondWithError(w, r, b.logger, http.StatusBadRequest, msg)
		return
	}

	metrics, _ := b.model()
	if metrics == nil {
		response.RespondWithError(w, r, b.logger, http.StatusServiceUnavailable, apperrors.MsgModelNotTrained)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, Estimate(car, *metrics, currentYear))
}

func validateCar(car types.CarData, currentYear int) string {
	switch {
	case car.Year < 1990 || car.Year > currentYear:
		return fmt.Sprintf(apperrors.MsgInvalidYear, currentYear)
	case car.PresentPrice <= 0:
		return apperrors.MsgInvalidPrice
	case car.KmsDriven < 0:
		return apperrors.MsgInvalidKms
	case !carvalue.ValidFuelTypes[car.FuelType]:
		return apperrors.MsgInvalidFuel
	case !carvalue.ValidSellerTypes[car.SellerType]:
		return apperrors.MsgInvalidSeller
	case !carvalue.ValidTransmissions[car.Transmission]:
		return apperrors.MsgInvalidGearbox
	case car.Owner < 0 || car.Owner > 3:
		return apperrors.MsgInvalidOwner
	}
	return ""
}

func (b *Backend) handleTrain(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile(carvalue.TrainingFileField)
	if err != nil {
		response.RespondWithError(w, r, b.logger, http.StatusBadRequest, apperrors.MsgNoTrainingFile)
		return
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		response.RespondWithError(w, r, b.logger, http.StatusInternalServerError, err.Error())
		return
	}
	if len(records) < 2 {
		response.RespondWithError(w, r, b.logger, http.StatusBadRequest, apperrors.MsgEmptyTrainingFile)
		return
	}

	var features []string
	for _, column := range records[0] {
		if !slices.Contains(nonFeatureColumns, column) {
			features = append(features, column)
		}
	}

	metrics := DefaultMetrics()

	b.mu.Lock()
	b.metrics = &metrics
	b.features = features
	b.mu.Unlock()

	response.RespondWithJSON(w, http.StatusOK, types.TrainingResult{
		Message: "model trained successfully",
		Metrics: metrics,
	})
}

func (b *Backend) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	metrics, features := b.model()
	if metrics == nil {
		message := "the model has not been trained yet"
		response.RespondWithJSON(w, http.StatusOK, types.ModelInfo{Trained: false, Message: &message})
		return
	}

	response.RespondWithJSON(w, http.StatusOK, types.ModelInfo{
		Trained: true,
		Info: &types.ModelDetails{
			Algorithm:    algorithm,
			NFeatures:    len(features),
			FeatureNames: features,
			Metrics:      metrics,
			Trained:      true,
		},
	})
}

// Estimate computes the valuation the stub returns for car.
//
// The price is the present price scaled by the depreciation factor; the range is ±10%
// (±15% when the model's R² is below 0.8) and the confidence is R² as a percentage.
func Estimate(car types.CarData, metrics types.TrainingMetrics, currentYear int) types.Valuation {
	factor := depreciationFactor(car.Year, currentYear)
	price := car.PresentPrice * factor

	margin := 0.10
	if metrics.R2Score < 0.8 {
		margin = 0.15
	}

	confidence := round2(metrics.R2Score * 100)
	message := confidenceMessage(metrics.R2Score)

	return types.Valuation{
		EstimatedPrice: round2(price),
		PriceRange: &types.PriceRange{
			Min: round2(price * (1 - margin)),
			Max: round2(price * (1 + margin)),
		},
		Confidence: &confidence,
		Message:    &message,
		Details: &types.ValuationDetails{
			VehicleAge:         currentYear - car.Year,
			DepreciationFactor: factor,
			MileageCategory:    mileageCategory(car.KmsDriven),
		},
	}
}

// 15% per year, clamped to [0.2, 1]
func depreciationFactor(year, currentYear int) float64 {
	f := 1 - 0.15*float64(currentYear-year)
	return math.Max(0.2, math.Min(1.0, f))
}

func mileageCategory(kms int) string {
	switch {
	case kms < 30000:
		return "low - excellent condition"
	case kms < 80000:
		return "medium - good condition"
	case kms < 150000:
		return "high - acceptable condition"
	default:
		return "very high - heavy wear"
	}
}

func confidenceMessage(r2 float64) string {
	switch {
	case r2 >= 0.9:
		return "very reliable estimate based on similar data"
	case r2 >= 0.8:
		return "reliable estimate with good precision"
	case r2 >= 0.7:
		return "moderately reliable estimate"
	default:
		return "approximate estimate, may vary with the market"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
