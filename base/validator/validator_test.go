package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0x83BDe9dF64af5e475DB44ba21C1dF25e19A0cfzz",
			expIsValid: false,
		},
		{
			desc:       "valid checksummed address",
			address:    "0x83BDe9dF64af5e475DB44ba21C1dF25e19A0cf9a",
			expIsValid: true,
		},
		{
			desc:       "valid lower case address",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidTxHash() {
	tests := []struct {
		desc       string
		hash       string
		expIsValid bool
	}{
		{
			desc:       "valid hash",
			hash:       "0x4e3a3754410177e6937ef1f84bba68ea139e8d1a2258c5f85db9f1cd715a1bdd",
			expIsValid: true,
		},
		{
			desc:       "missing prefix",
			hash:       "4e3a3754410177e6937ef1f84bba68ea139e8d1a2258c5f85db9f1cd715a1bdd",
			expIsValid: false,
		},
		{
			desc:       "too short",
			hash:       "0x4e3a3754",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidTxHash(t.hash), t.desc)
	}
}
