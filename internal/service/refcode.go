package service

import (
	"crypto/rand"
	"fmt"
)

// Алфавит реферального кода: заглавные буквы и цифры без визуально похожих символов
// (0/O, 1/I/L). Код валидируется без учета регистра.
const refCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const refCodeLength = 8

// newReferralCode генерирует случайный реферальный код. Уникальность кода
// обеспечивается ограничением БД, генератор не проверяет коллизии сам.
func newReferralCode() (string, error) {
	buf := make([]byte, refCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating referral code: %s", err.Error())
	}
	for i, b := range buf {
		buf[i] = refCodeAlphabet[int(b)%len(refCodeAlphabet)]
	}
	return string(buf), nil
}
