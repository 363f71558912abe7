package service

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
)

const commissionScale = 2

// ResolveOrderAmount определяет базовую сумму для расчета комиссии. Явная стоимость
// погашенного объекта (например карты оплаты) имеет приоритет над суммой заказа.
// Нулевой результат означает "пропустить событие, ничего не начислять".
func ResolveOrderAmount(orderAmount decimal.Decimal, redeemedValue *decimal.Decimal) decimal.Decimal {
	if redeemedValue != nil && redeemedValue.IsPositive() {
		return *redeemedValue
	}
	if orderAmount.IsPositive() {
		return orderAmount
	}
	return decimal.Zero
}

// ComputeCommission считает сумму комиссии по применимой ставке с округлением до 2 знаков.
// Возвращает 0 (что означает "не начислять"), если правила выключены, ставка нулевая
// или базовая сумма не положительна.
func ComputeCommission(
	orderAmount decimal.Decimal,
	eventType domain.CommissionEventType,
	rule domain.CommissionRule,
) decimal.Decimal {
	if !rule.Enabled || !orderAmount.IsPositive() {
		return decimal.Zero
	}

	rate := rule.RenewalRate
	if eventType == domain.CommissionEventFirstRecharge {
		rate = rule.FirstRate
	}
	if !rate.IsPositive() {
		return decimal.Zero
	}

	return orderAmount.Mul(rate).Round(commissionScale)
}
