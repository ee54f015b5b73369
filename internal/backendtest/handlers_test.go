package backendtest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/carvalue/carvalue-client/internal/apperrors"
	"github.com/carvalue/carvalue-client/internal/types"
)

func TestPredictValidation(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	backend := New(t, WithTrainedModel(DefaultMetrics()), WithClock(func() time.Time { return now }))

	valid := `{"Year":2017,"Present_Price":9.85,"Kms_Driven":6900,"Fuel_Type":"Petrol","Seller_Type":"Dealer","Transmission":"Manual","Owner":0}`

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
	}{
		{"valid", valid, http.StatusOK, ""},
		{"not json", `Year=2017`, http.StatusBadRequest, apperrors.MsgMalformedBody},
		{"missing field", `{"Year":2017}`, http.StatusBadRequest, "missing required field: Present_Price"},
		{"wrong type", `{"Year":"new","Present_Price":9.85,"Kms_Driven":6900,"Fuel_Type":"Petrol","Seller_Type":"Dealer","Transmission":"Manual","Owner":0}`, http.StatusBadRequest, apperrors.MsgMalformedBody},
		{"future year", `{"Year":2030,"Present_Price":9.85,"Kms_Driven":6900,"Fuel_Type":"Petrol","Seller_Type":"Dealer","Transmission":"Manual","Owner":0}`, http.StatusBadRequest, "year must be between 1990 and 2024"},
		{"zero price", `{"Year":2017,"Present_Price":0,"Kms_Driven":6900,"Fuel_Type":"Petrol","Seller_Type":"Dealer","Transmission":"Manual","Owner":0}`, http.StatusBadRequest, apperrors.MsgInvalidPrice},
		{"negative kms", `{"Year":2017,"Present_Price":9.85,"Kms_Driven":-1,"Fuel_Type":"Petrol","Seller_Type":"Dealer","Transmission":"Manual","Owner":0}`, http.StatusBadRequest, apperrors.MsgInvalidKms},
		{"bad seller", `{"Year":2017,"Present_Price":9.85,"Kms_Driven":6900,"Fuel_Type":"Petrol","Seller_Type":"Broker","Transmission":"Manual","Owner":0}`, http.StatusBadRequest, apperrors.MsgInvalidSeller},
		{"too many owners", `{"Year":2017,"Present_Price":9.85,"Kms_Driven":6900,"Fuel_Type":"Petrol","Seller_Type":"Dealer","Transmission":"Manual","Owner":4}`, http.StatusBadRequest, apperrors.MsgInvalidOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := http.Post(backend.URL+"/api/predict", "application/json", bytes.NewBufferString(tt.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer res.Body.Close()

			if res.StatusCode != tt.wantCode {
				t.Errorf("got status %d, want %d", res.StatusCode, tt.wantCode)
			}
			if tt.wantError == "" {
				return
			}

			var errResp apperrors.ErrorResponse
			if err := json.NewDecoder(res.Body).Decode(&errResp); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if errResp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", errResp.Error, tt.wantError)
			}
		})
	}
}

func TestEstimate(t *testing.T) {
	car := types.CarData{Year: 2020, PresentPrice: 10, KmsDriven: 90000, FuelType: "Petrol", SellerType: "Dealer", Transmission: "Manual"}

	tests := []struct {
		name       string
		r2         float64
		wantMargin float64
	}{
		{"confident model", 0.92, 0.10},
		{"weak model", 0.75, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(car, types.TrainingMetrics{R2Score: tt.r2}, 2022)

			// two years at 15% per year
			if got.Details.DepreciationFactor != depreciationFactor(2020, 2022) || got.EstimatedPrice != 7 {
				t.Errorf("EstimatedPrice = %v, factor = %v, want 7 and 0.7", got.EstimatedPrice, got.Details.DepreciationFactor)
			}
			if got.PriceRange.Min != round2(7*(1-tt.wantMargin)) || got.PriceRange.Max != round2(7*(1+tt.wantMargin)) {
				t.Errorf("PriceRange = %+v, want ±%v", *got.PriceRange, tt.wantMargin)
			}
			if got.Details.VehicleAge != 2 {
				t.Errorf("VehicleAge = %d, want 2", got.Details.VehicleAge)
			}
			if got.Details.MileageCategory != "high - acceptable condition" {
				t.Errorf("MileageCategory = %q", got.Details.MileageCategory)
			}
		})
	}
}

func TestDepreciationFactorBounds(t *testing.T) {
	if f := depreciationFactor(1990, 2024); f != 0.2 {
		t.Errorf("old car factor = %v, want floor of 0.2", f)
	}
	if f := depreciationFactor(2024, 2024); f != 1.0 {
		t.Errorf("new car factor = %v, want 1.0", f)
	}
}

func TestUnknownRouteIsNotJSON(t *testing.T) {
	backend := New(t)

	res, err := http.Get(backend.URL + "/api/depreciation-curve")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		t.Errorf("got status %d, want 404", res.StatusCode)
	}
}
