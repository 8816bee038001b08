package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"expense-split/core/flight"
	"expense-split/core/output"
	"expense-split/core/policy"
	"expense-split/core/reimbursement"
	"expense-split/core/types"
	"expense-split/internal/errors"
)

// codeInvalidJSON marks bodies that could not be decoded at all.
const codeInvalidJSON = "INVALID_JSON"

var errTrailingData = stderrors.New("unexpected data after JSON object")

// maxBodyBytes bounds request bodies; every valid request is a few hundred bytes.
const maxBodyBytes = 1 << 16

func (s *Server) handleHotel(w http.ResponseWriter, r *http.Request) {
	var req HotelRequest
	if !s.decode(w, r, calculatorHotel, &req) {
		return
	}

	in := reimbursement.Input{
		StandardPerNight:   req.StandardPerNight,
		Nights:             req.Nights,
		Mode:               reimbursement.InputMode(req.InputMode),
		TotalAmount:        req.TotalAmount,
		PricePerNight:      req.PricePerNight,
		HasSpecialApproval: req.HasSpecialApproval,
		Currency:           s.currency(req.Currency),
	}

	start := time.Now()
	result, err := reimbursement.Calculate(in)
	if err != nil {
		s.fail(w, r, calculatorHotel, err)
		return
	}
	s.metrics.observe(calculatorHotel, outcomeOK, time.Since(start).Seconds())

	s.logger.Debug("hotel calculated",
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("kind", string(result.Kind)),
		zap.String("total", result.TotalAmount.String()),
	)
	s.writeJSON(w, result, http.StatusOK)
}

func (s *Server) handleFlightSplit(w http.ResponseWriter, r *http.Request) {
	var req FlightSplitRequest
	if !s.decode(w, r, calculatorFlightSplit, &req) {
		return
	}
	if req.Total == nil {
		s.fail(w, r, calculatorFlightSplit, errors.Validation("total", errors.MsgInvalidInput))
		return
	}

	preset := req.Preset
	if preset == "" {
		preset = flight.PresetCustom
	}
	custom := 0.0
	if req.CompanyPercent != nil {
		custom = *req.CompanyPercent
	} else if preset == flight.PresetCustom {
		s.fail(w, r, calculatorFlightSplit, errors.Validation("company_percent", errors.MsgPercentRange))
		return
	}
	pct, err := flight.PresetPercent(preset, custom)
	if err != nil {
		s.fail(w, r, calculatorFlightSplit, err)
		return
	}

	start := time.Now()
	result, err := flight.SplitFlat(*req.Total, pct)
	if err != nil {
		s.fail(w, r, calculatorFlightSplit, err)
		return
	}
	s.metrics.observe(calculatorFlightSplit, outcomeOK, time.Since(start).Seconds())

	s.writeJSON(w, output.FlightReport{
		Mode:     "split",
		Currency: s.currency(req.Currency),
		Result:   result,
	}, http.StatusOK)
}

func (s *Server) handleFlightUpgrade(w http.ResponseWriter, r *http.Request) {
	var req FlightUpgradeRequest
	if !s.decode(w, r, calculatorFlightUpgrade, &req) {
		return
	}

	if req.EconomyAmount == nil && req.UpgradeAmount == nil {
		s.fail(w, r, calculatorFlightUpgrade, errors.Validation("amounts", errors.MsgInvalidInput))
		return
	}
	economy := lo.FromPtr(req.EconomyAmount)
	upgrade := lo.FromPtr(req.UpgradeAmount)

	pct := *s.opts.UpgradeCompanyPercent
	if req.UpgradeCompanyPercent != nil {
		pct = *req.UpgradeCompanyPercent
	}

	start := time.Now()
	result, err := flight.SplitUpgrade(economy, upgrade, pct)
	if err != nil {
		s.fail(w, r, calculatorFlightUpgrade, err)
		return
	}
	s.metrics.observe(calculatorFlightUpgrade, outcomeOK, time.Since(start).Seconds())

	s.writeJSON(w, output.FlightReport{
		Mode:     "upgrade",
		Currency: s.currency(req.Currency),
		Result:   result,
	}, http.StatusOK)
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, policy.Rules(), http.StatusOK)
}

// decode reads exactly one JSON object, rejecting unknown fields. It writes the error
// response itself and reports whether the handler should continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, calculator string, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.fail(w, r, calculator, errors.Input("invalid request body", err))
		return false
	}
	if err := dec.Decode(&struct{}{}); !stderrors.Is(err, io.EOF) {
		s.fail(w, r, calculator, errors.Input("invalid request body", errTrailingData))
		return false
	}
	return true
}

// fail maps an error to a status code, counts it and writes the envelope.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, calculator string, err error) {
	reqID := RequestIDFromContext(r.Context())

	e, ok := errors.As(err)
	if !ok {
		e = errors.Internal("unexpected calculator error", err)
	}

	var (
		status  int
		outcome string
		detail  ErrorDetail
	)
	switch e.Type {
	case errors.TypeValidation:
		status, outcome = http.StatusBadRequest, outcomeValidation
		detail = ErrorDetail{Code: string(e.Type), Message: e.Message, Field: e.Field()}
	case errors.TypeInput:
		status, outcome = http.StatusBadRequest, outcomeBadRequest
		detail = ErrorDetail{Code: codeInvalidJSON, Message: e.Message}
		if e.Cause != nil {
			detail.Message = e.Message + ": " + e.Cause.Error()
		}
	default:
		status, outcome = http.StatusInternalServerError, outcomeError
		detail = ErrorDetail{Code: string(errors.TypeInternal), Message: "internal error"}
	}

	s.metrics.observe(calculator, outcome, 0)
	if status >= http.StatusInternalServerError {
		s.logger.Error("calculation failed", zap.String("calculator", calculator), zap.String("request_id", reqID), zap.Error(err))
	} else {
		s.logger.Warn("calculation rejected", zap.String("calculator", calculator), zap.String("request_id", reqID), zap.Error(err))
	}

	s.writeJSON(w, ErrorBody{Error: detail, RequestID: reqID}, status)
}

func (s *Server) currency(c types.Currency) types.Currency {
	if c == "" {
		return s.opts.Currency
	}
	return types.ParseCurrency(string(c))
}
