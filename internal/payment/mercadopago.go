package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/navalha-studio/booking-api/internal/models"
)

// DepositClient cria preferências de pagamento no Mercado Pago para o
// sinal de uma reserva. Nil quando o token não está configurado.
type DepositClient struct {
	prefs preference.Client
}

func NewDepositClient(accessToken string) (*DepositClient, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &DepositClient{prefs: preference.NewClient(cfg)}, nil
}

func (c *DepositClient) Enabled() bool {
	return c != nil
}

// CreateDepositPreference gera o link de pagamento do sinal (metade do
// preço do serviço) referenciando a reserva.
func (c *DepositClient) CreateDepositPreference(
	ctx context.Context,
	res *models.Reservation,
	svc *models.Service,
) (string, error) {

	deposit := svc.Price / 2

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     fmt.Sprintf("Sinal - %s", svc.Name),
				Quantity:  1,
				UnitPrice: deposit,
			},
		},
		ExternalReference: fmt.Sprintf("reserva-%d", res.ID),
	}

	resp, err := c.prefs.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}

	return resp.InitPoint, nil
}
