package payments

import (
	"context"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/lushlooksbeauty/studio-api/internal/httperr"
)

const statusApproved = "approved"

type MercadoPagoVerifier struct {
	client payment.Client
}

func NewMercadoPagoVerifier(accessToken string) (*MercadoPagoVerifier, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoVerifier{
		client: payment.NewClient(cfg),
	}, nil
}

func (v *MercadoPagoVerifier) Verify(
	ctx context.Context,
	paymentID string,
) (*Verification, error) {

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_payment_reference")
	}

	res, err := v.client.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Verification{
		Approved: res.Status == statusApproved,
		Amount:   res.TransactionAmount,
	}, nil
}

var _ Verifier = (*MercadoPagoVerifier)(nil)
