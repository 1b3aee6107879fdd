package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ufund-io/ufund-v2/internal/api/shared/dto"
	"github.com/ufund-io/ufund-v2/internal/domain"
)

func buildCreateNeedRequest() dto.CreateNeedRequest {
	return dto.CreateNeedRequest{
		Name:           "Winter blankets",
		Type:           domain.NeedTypeGoods,
		Description:    "Wool blankets for the shelter",
		Price:          domain.NewMoneyFromCents(1000),
		QuantityNeeded: 100,
		Urgency:        domain.UrgencyHigh,
	}
}

func TestCreateNeedRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateNeedRequest)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(r *dto.CreateNeedRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *dto.CreateNeedRequest) { r.Name = "   " },
			wantErr: "name is required",
		},
		{
			name:    "name too long",
			mutate:  func(r *dto.CreateNeedRequest) { r.Name = strings.Repeat("x", 121) },
			wantErr: "at most 120 characters",
		},
		{
			name:    "invalid type",
			mutate:  func(r *dto.CreateNeedRequest) { r.Type = "favor" },
			wantErr: "invalid need type",
		},
		{
			name:    "negative price",
			mutate:  func(r *dto.CreateNeedRequest) { r.Price = domain.NewMoneyFromCents(-1) },
			wantErr: "price must not be negative",
		},
		{
			name:    "zero quantity needed",
			mutate:  func(r *dto.CreateNeedRequest) { r.QuantityNeeded = 0 },
			wantErr: "quantityNeeded must be at least 1",
		},
		{
			name:    "invalid urgency",
			mutate:  func(r *dto.CreateNeedRequest) { r.Urgency = "apocalyptic" },
			wantErr: "invalid urgency tag",
		},
		{
			name:    "too many images",
			mutate:  func(r *dto.CreateNeedRequest) { r.Images = make([]string, 11) },
			wantErr: "maximum 10 images",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := buildCreateNeedRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateNeedRequestValidate(t *testing.T) {
	req := dto.UpdateNeedRequest{
		Name:              "Winter blankets",
		Type:              domain.NeedTypeGoods,
		Price:             domain.NewMoneyFromCents(1000),
		QuantityNeeded:    100,
		QuantityFulfilled: -1,
		Urgency:           domain.UrgencyHigh,
	}
	assert.ErrorContains(t, req.Validate(), "quantityFulfilled must not be negative")

	req.QuantityFulfilled = 10
	assert.NoError(t, req.Validate())
}

func TestBatchNeedsRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		needIDs []int64
		wantErr string
	}{
		{name: "valid", needIDs: []int64{1, 2, 3}},
		{name: "empty", needIDs: nil, wantErr: "needIds is required"},
		{name: "non-positive id", needIDs: []int64{1, 0}, wantErr: "invalid need ID: 0"},
		{name: "too many ids", needIDs: make([]int64, 101), wantErr: "maximum 100 need IDs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.BatchNeedsRequest{NeedIDs: tt.needIDs}
			if tt.name == "too many ids" {
				for i := range req.NeedIDs {
					req.NeedIDs[i] = int64(i + 1)
				}
			}

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLineRequestsValidate(t *testing.T) {
	assert.NoError(t, (&dto.AddLineRequest{NeedID: 5, Quantity: 3}).Validate())
	assert.ErrorContains(t, (&dto.AddLineRequest{NeedID: 0, Quantity: 3}).Validate(), "needId is required")
	assert.ErrorContains(t, (&dto.AddLineRequest{NeedID: 5, Quantity: 0}).Validate(), "quantity must be at least 1")

	assert.NoError(t, (&dto.AdjustLineRequest{Delta: -2}).Validate())
	assert.ErrorContains(t, (&dto.AdjustLineRequest{Delta: 0}).Validate(), "delta must not be zero")

	assert.NoError(t, (&dto.FulfillNeedRequest{Quantity: 1}).Validate())
	assert.ErrorContains(t, (&dto.FulfillNeedRequest{Quantity: 0}).Validate(), "quantity must be at least 1")
}

func TestCreateProfileRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateProfileRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  dto.CreateProfileRequest{UserName: "helper1", Email: "helper1@example.org"},
		},
		{
			name:    "missing user name",
			req:     dto.CreateProfileRequest{UserName: "  "},
			wantErr: "userName is required",
		},
		{
			name:    "user name with whitespace",
			req:     dto.CreateProfileRequest{UserName: "helper one"},
			wantErr: "must not contain whitespace",
		},
		{
			name:    "user name with slash",
			req:     dto.CreateProfileRequest{UserName: "helper/one"},
			wantErr: "must not contain whitespace or slashes",
		},
		{
			name:    "bad email",
			req:     dto.CreateProfileRequest{UserName: "helper1", Email: "not-an-email"},
			wantErr: "invalid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSetPrivacyRequestValidate(t *testing.T) {
	assert.ErrorContains(t, (&dto.SetPrivacyRequest{}).Validate(), "private is required")

	private := true
	assert.NoError(t, (&dto.SetPrivacyRequest{Private: &private}).Validate())
}
