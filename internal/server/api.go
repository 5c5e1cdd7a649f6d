package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/san-kum/popgrowth/internal/export"
	"github.com/san-kum/popgrowth/internal/logistic"
)

// SeriesInput mirrors the bounds of the dashboard's input widgets.
type SeriesInput struct {
	N0   int     `query:"n0" minimum:"1" maximum:"10000" default:"100" doc:"Initial population N0"`
	R    float64 `query:"r" minimum:"-5" maximum:"5" default:"0.5" doc:"Intrinsic growth rate r (may be negative)"`
	K    int     `query:"k" minimum:"1" maximum:"100000" default:"500" doc:"Carrying capacity K"`
	TMax int     `query:"tmax" minimum:"1" maximum:"1000" default:"10" doc:"Inclusive time horizon"`
}

type SeriesOutput struct {
	Body export.ExportData
}

func (s *Server) registerAPI() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-series",
		Method:      http.MethodGet,
		Path:        "/api/series",
		Summary:     "Evaluate the logistic series",
		Description: "Returns N(t) for t = 0..tmax. Rejects r < 0 with K < N0, where the closed form blows up in finite time.",
		Tags:        []string{"series"},
	}, s.getSeries)
}

func (s *Server) getSeries(ctx context.Context, in *SeriesInput) (*SeriesOutput, error) {
	p := logistic.Params{N0: in.N0, R: in.R, K: in.K, TMax: in.TMax}
	series, err := s.evaluate(p)
	if err != nil {
		if de, ok := logistic.AsDomainError(err); ok {
			return nil, huma.Error422UnprocessableEntity(de.Explain())
		}
		return nil, huma.Error400BadRequest(err.Error())
	}
	return &SeriesOutput{Body: export.NewExportData(p, series)}, nil
}
