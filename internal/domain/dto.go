package domain

type CommissionEventType string

const (
	CommissionEventFirstRecharge CommissionEventType = "first_recharge"
	CommissionEventRenewal       CommissionEventType = "renewal"
)

func (t CommissionEventType) Valid() bool {
	return t == CommissionEventFirstRecharge || t == CommissionEventRenewal
}

type CommissionStatusType string

const (
	CommissionStatusPending  CommissionStatusType = "pending"
	CommissionStatusApproved CommissionStatusType = "approved"
	CommissionStatusRejected CommissionStatusType = "rejected"
	CommissionStatusPaid     CommissionStatusType = "paid"
)

// CanTransitionTo допустимые переходы: pending -> approved|rejected, approved -> paid.
func (s CommissionStatusType) CanTransitionTo(target CommissionStatusType) bool {
	switch s {
	case CommissionStatusPending:
		return target == CommissionStatusApproved || target == CommissionStatusRejected
	case CommissionStatusApproved:
		return target == CommissionStatusPaid
	default:
		return false
	}
}

type PayoutStatusType string

const (
	PayoutStatusPending  PayoutStatusType = "pending"
	PayoutStatusApproved PayoutStatusType = "approved"
	PayoutStatusRejected PayoutStatusType = "rejected"
	PayoutStatusPaid     PayoutStatusType = "paid"
)

// CanTransitionTo допустимые переходы: pending -> approved|rejected, approved -> paid.
// rejected и paid - терминальные статусы.
func (s PayoutStatusType) CanTransitionTo(target PayoutStatusType) bool {
	switch s {
	case PayoutStatusPending:
		return target == PayoutStatusApproved || target == PayoutStatusRejected
	case PayoutStatusApproved:
		return target == PayoutStatusPaid
	default:
		return false
	}
}

type PayoutMethodType string

const (
	PayoutMethodAlipay PayoutMethodType = "alipay"
	PayoutMethodUSDT   PayoutMethodType = "usdt"
)

func (m PayoutMethodType) Valid() bool {
	return m == PayoutMethodAlipay || m == PayoutMethodUSDT
}
