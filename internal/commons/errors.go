package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrInvalidAmount = errors.New("Amount must be greater than zero")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrInsufficientReserve = errors.New("Insufficient branch reserve")
var ErrNoTellerAvailable = errors.New("No teller available at branch")
var ErrInvalidRating = errors.New("Rating must be between one and five stars")
var ErrNoRecommendation = errors.New("No movie to recommend")
