package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is the process configuration, resolved once at startup. The deposit
// values are handed to the orchestrator as an explicit DepositConfig rather
// than read from the environment deep in the call stack.
type App struct {
	// HTTP
	Port int `envconfig:"PORT" default:"8080"`

	// Storage
	BookingsTable string `envconfig:"BOOKINGS_TABLE" default:"bookings"`

	// Payment provider
	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`

	// Deposit policy
	DepositAmountCents    int64  `envconfig:"DEPOSIT_AMOUNT_CENTS" default:"5000"`
	DepositCurrency       string `envconfig:"DEPOSIT_CURRENCY" default:"cad"`
	DepositMaxAmountCents int64  `envconfig:"DEPOSIT_MAX_AMOUNT_CENTS" default:"100000"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
