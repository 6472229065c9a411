package services

import (
	"context"

	"cncquote/internal/dto"
	"cncquote/internal/logger"
	"cncquote/internal/pricing"
)

// QuoteService prices a quote request against the static tables.
type QuoteService interface {
	Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error)
}

type quoteService struct{}

func NewQuoteService() QuoteService {
	return &quoteService{}
}

func (s *quoteService) Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	geo := pricing.Geometry{
		PartVolumeCm3:  req.Geometry.VolCm3,
		StockVolumeCm3: req.Geometry.StockVolCm3,
	}

	quote, err := pricing.ComputeQuote(geo, req.Material, req.Tolerance, req.Finish, req.Quantity)
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "quote computed",
		"material", req.Material,
		"tolerance", req.Tolerance,
		"finish", req.Finish,
		"quantity", req.Quantity,
		"unit_price", quote.UnitPrice,
	)

	return &dto.QuoteResponse{
		UnitPrice:  quote.UnitPrice,
		TotalPrice: quote.TotalPrice,
	}, nil
}
