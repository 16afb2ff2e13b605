// Package domain implements the pure option-chain projection logic:
// filtering, sorting, and expiration extraction over an in-memory chain.
package domain

import (
	"sort"
	"strconv"
	"strings"

	"stockview_backend/internal/feature/options/domain/entity"
)

// TypeFilter selects which contract types the projection keeps.
type TypeFilter string

const (
	FilterAll   TypeFilter = "ALL"
	FilterCalls TypeFilter = "CALLS"
	FilterPuts  TypeFilter = "PUTS"
)

// Filter narrows the chain before sorting. A zero Filter keeps everything.
type Filter struct {
	Type       TypeFilter // ALL (or empty) keeps both calls and puts
	Expiration string     // exact-match expiration date; empty means no filtering
}

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Sort names a Contract field to order by. An unknown or empty key leaves
// the input order untouched.
type Sort struct {
	Key       string
	Direction Direction
}

// Project returns the filtered, sorted view of contracts.
//
// Sorting compares two values numerically when both parse as numbers and
// lexically otherwise. Contracts with no value for the sort key always sort
// after contracts that have one, regardless of direction. The sort is stable:
// ties keep the relative order of the input. The input slice is never
// mutated, and the result holds only contracts present in the input.
func Project(contracts []entity.Contract, f Filter, s Sort) []entity.Contract {
	out := make([]entity.Contract, 0, len(contracts))
	for _, c := range contracts {
		if !matchType(c, f.Type) {
			continue
		}
		if f.Expiration != "" && c.Expiration != f.Expiration {
			continue
		}
		out = append(out, c)
	}

	if s.Key == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		av, aok := fieldValue(out[i], s.Key)
		bv, bok := fieldValue(out[j], s.Key)
		// 値が無い契約は方向に関係なく常に後ろへ
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		cmp := compareValues(av, bv)
		if s.Direction == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// DistinctExpirations returns the sorted (ascending, lexical) set of unique
// expiration dates across the full, unfiltered chain.
func DistinctExpirations(contracts []entity.Contract) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, c := range contracts {
		if c.Expiration == "" {
			continue
		}
		if _, ok := seen[c.Expiration]; ok {
			continue
		}
		seen[c.Expiration] = struct{}{}
		out = append(out, c.Expiration)
	}
	sort.Strings(out)
	return out
}

func matchType(c entity.Contract, f TypeFilter) bool {
	switch f {
	case FilterCalls:
		return c.Type == entity.Call
	case FilterPuts:
		return c.Type == entity.Put
	default:
		return true
	}
}

// compareValues compares numerically when both values parse as numbers,
// and lexically otherwise. Returns -1, 0, or 1.
func compareValues(a, b string) int {
	af, aerr := strconv.ParseFloat(a, 64)
	bf, berr := strconv.ParseFloat(b, 64)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// fieldValue resolves a sort key to a contract's field. The empty string
// counts as "no value" so that feeds omitting a greek still sort sanely.
func fieldValue(c entity.Contract, key string) (string, bool) {
	var v string
	switch key {
	case "contractID":
		v = c.ContractID
	case "symbol":
		v = c.Symbol
	case "type":
		v = string(c.Type)
	case "expiration":
		v = c.Expiration
	case "strike", "strikePrice":
		v = c.Strike
	case "last", "lastPrice":
		v = c.Last
	case "bid":
		v = c.Bid
	case "ask":
		v = c.Ask
	case "volume":
		v = c.Volume
	case "openInterest":
		v = c.OpenInterest
	case "delta":
		v = c.Delta
	case "gamma":
		v = c.Gamma
	case "theta":
		v = c.Theta
	case "vega":
		v = c.Vega
	default:
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}
