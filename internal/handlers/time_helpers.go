package handlers

import (
	"time"

	"github.com/navalha-studio/booking-api/internal/models"
	"github.com/navalha-studio/booking-api/internal/timezone"
)

// Datas e horários de requisições são interpretados no fuso da barbearia.

func parseDateInShop(shop *models.Shop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(shop.Timezone),
	)
}

func parseDateTimeInShop(
	shop *models.Shop,
	value string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04:05",
		value,
		timezone.Location(shop.Timezone),
	)
}
