package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		from  CommissionStatusType
		to    CommissionStatusType
		valid bool
	}{
		{CommissionStatusPending, CommissionStatusApproved, true},
		{CommissionStatusPending, CommissionStatusRejected, true},
		{CommissionStatusPending, CommissionStatusPaid, false},
		{CommissionStatusApproved, CommissionStatusPaid, true},
		{CommissionStatusApproved, CommissionStatusRejected, false},
		{CommissionStatusApproved, CommissionStatusPending, false},
		{CommissionStatusRejected, CommissionStatusApproved, false},
		{CommissionStatusPaid, CommissionStatusApproved, false},
		{CommissionStatusPaid, CommissionStatusPaid, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPayoutStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		from  PayoutStatusType
		to    PayoutStatusType
		valid bool
	}{
		{PayoutStatusPending, PayoutStatusApproved, true},
		{PayoutStatusPending, PayoutStatusRejected, true},
		{PayoutStatusPending, PayoutStatusPaid, false},
		{PayoutStatusApproved, PayoutStatusPaid, true},
		{PayoutStatusApproved, PayoutStatusRejected, false},
		{PayoutStatusRejected, PayoutStatusPending, false},
		{PayoutStatusPaid, PayoutStatusPaid, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPayoutMethodValid(t *testing.T) {
	assert.True(t, PayoutMethodAlipay.Valid())
	assert.True(t, PayoutMethodUSDT.Valid())
	assert.False(t, PayoutMethodType("paypal").Valid())
	assert.False(t, PayoutMethodType("").Valid())
}

func TestCommissionEventTypeValid(t *testing.T) {
	assert.True(t, CommissionEventFirstRecharge.Valid())
	assert.True(t, CommissionEventRenewal.Valid())
	assert.False(t, CommissionEventType("refund").Valid())
}

func TestInvalidTransitionError(t *testing.T) {
	err := NewInvalidTransitionError("paid", "approved")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.EqualError(t, err, "invalid status transition paid -> approved")

	var transitionErr *InvalidTransitionError
	assert.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, "paid", transitionErr.From)
	assert.Equal(t, "approved", transitionErr.To)
}
