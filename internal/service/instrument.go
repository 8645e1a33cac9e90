package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("cash-wallet-ledger/internal/service")

// instrumentation wraps an operation in a span and records its latency and outcome.
type instrumentation struct {
	metrics *metrics.Metrics
}

func (i instrumentation) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(attrs...))
	started := time.Now()
	return ctx, func(err error) {
		i.metrics.ObserveOperation(op, time.Since(started))
		if err != nil {
			code := apperror.CodeOf(err)
			if code == "" {
				code = "SYS_001"
			}
			i.metrics.IncrementRejection(op, code)
			span.RecordError(err)
			span.SetStatus(codes.Error, code)
		}
		span.End()
	}
}

func companyAttr(id uuid.UUID) attribute.KeyValue {
	return attribute.String("company_id", id.String())
}

// asAppError passes AppErrors through and wraps anything else as SYS_001.
func asAppError(err error, op string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}

// companyClock resolves a tenant's profile and the instant used for month boundaries.
type companyClock struct {
	companies ports.CompanyDirectory
	fallback  *time.Location
	now       func() time.Time
}

func newCompanyClock(companies ports.CompanyDirectory, fallback *time.Location) *companyClock {
	if fallback == nil {
		fallback = time.UTC
	}
	return &companyClock{companies: companies, fallback: fallback, now: time.Now}
}

func (c *companyClock) resolve(ctx context.Context, companyID uuid.UUID) (*domain.CompanyProfile, *time.Location, error) {
	profile, err := c.companies.Profile(ctx, companyID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("load company profile: %w", err))
	}
	if profile == nil {
		return nil, nil, apperror.ErrNotFound("company")
	}
	return profile, profile.Location(c.fallback), nil
}

func validateRange(r domain.DateRange) error {
	if err := r.Validate(); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}
