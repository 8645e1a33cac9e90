package handler

import (
	"strconv"
	"strings"
	"time"

	"cash-wallet-ledger/internal/adapter/http/middleware"
	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/pkg/apperror"
	"cash-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateOnly = "2006-01-02"

// openEnd stands in for a missing upper bound on range queries.
var openEnd = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// actor reads the authenticated caller or writes AUTH_001 and reports false.
func actor(c *gin.Context) (companyID, userID uuid.UUID, ok bool) {
	companyID, userID, ok = middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return companyID, userID, ok
}

// uuidParam parses a path parameter or writes VAL_005 and reports false.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// parseRange reads ?from&to. Both accept RFC 3339 or a bare date; a bare
// "to" date covers that whole day. Missing bounds leave the range open.
func parseRange(c *gin.Context) (domain.DateRange, error) {
	r := domain.DateRange{To: openEnd}
	if v := c.Query("from"); v != "" {
		t, err := parseTime(v, false)
		if err != nil {
			return r, apperror.Validation("invalid from")
		}
		r.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseTime(v, true)
		if err != nil {
			return r, apperror.Validation("invalid to")
		}
		r.To = t
	}
	if err := r.Validate(); err != nil {
		return r, apperror.Validation(err.Error())
	}
	return r, nil
}

func parseTime(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnly, v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

func parseStatusFilter(c *gin.Context) (domain.StatusFilter, error) {
	filter, ok := domain.ParseStatusFilter(c.Query("status"))
	if !ok {
		return "", apperror.Validation("status must be one of all, balanced, unbalanced")
	}
	return filter, nil
}

func parseAction(s string) (domain.SubmitAction, error) {
	action, ok := domain.ParseSubmitAction(s)
	if !ok {
		return "", apperror.Validation("action must be draft or approve")
	}
	return action, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperror.Validation("invalid amount")
	}
	return d, nil
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
