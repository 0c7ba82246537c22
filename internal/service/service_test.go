package service

import (
	"time"

	"shift-scheduler/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	getUserByEmail = store.GetUserByEmail
	emailExists = store.EmailExists
	createUser = store.CreateUser
	ensureUser = store.EnsureUser
	hashPassword = HashPassword
	comparePassword = ComparePassword
	listShifts = store.ListShifts
	listShiftsForDay = store.ListShiftsForDay
	insertShift = store.CreateShift
	listEmployees = store.ListEmployees
}

// fixedIssuer returns an issuer whose clock is pinned to at.
func fixedIssuer(secret string, at time.Time) *TokenIssuer {
	i, err := NewTokenIssuer(secret)
	if err != nil {
		panic(err)
	}
	i.now = func() time.Time { return at }
	return i
}
