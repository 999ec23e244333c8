package pkg

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

func GenerateULIDObject() ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy())
}

func ParseULID(ulidStr string) (ulid.ULID, error) {
	if ulidStr == "" {
		return ulid.ULID{}, errors.New("ULID string cannot be empty")
	}

	parsedULID, err := ulid.Parse(ulidStr)
	if err != nil {
		return ulid.ULID{}, errors.New("invalid ULID format")
	}

	return parsedULID, nil
}

func IsEmptyULID(id ulid.ULID) bool {
	return id == ulid.ULID{}
}
