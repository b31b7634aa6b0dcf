package models

import "errors"

var (
	ErrInvalidCountryName  = errors.New("invalid country name")
	ErrInvalidPopulation   = errors.New("invalid population")
	ErrInvalidEstimatedGDP = errors.New("estimated GDP requires an exchange rate")

	ErrCountrySourceUnavailable = errors.New("could not fetch data from countries API")
	ErrRateSourceUnavailable    = errors.New("could not fetch data from exchange rates API")

	ErrSummaryNotFound = errors.New("summary image not found")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound = errors.New("record not found")
)
