package tracker

import (
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the open.er-api.com exchange-rate API.

const ratesURLEnv = "RATES_API_URL"

var ratesURLFlag = flag.String("rates-url", "", "Exchange-rate API endpoint, the reference currency code is appended.\n If missing it will read the environment variable \""+ratesURLEnv+"\". Defaults to https://open.er-api.com/v6/latest/")

func ratesURL() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *ratesURLFlag == "" {
		*ratesURLFlag = os.Getenv(ratesURLEnv)
	}
	if *ratesURLFlag == "" {
		*ratesURLFlag = "https://open.er-api.com/v6/latest/"
	}
	return *ratesURLFlag
}

// FetchRates fetches the latest conversion rates for all currencies relative
// to the reference currency. The returned mapping is rate-to-reference: a
// wallet balance multiplied by its currency's rate values it in the
// reference currency, and the reference itself maps to 1.
//
// The provider quotes the opposite direction (units of each currency per one
// reference unit), so quotes are inverted here.
func FetchRates(reference string) (map[string]decimal.Decimal, error) {
	// https://open.er-api.com/v6/latest/USD
	// {
	// 	"result": "success",
	// 	"base_code": "USD",
	// 	"rates": {
	// 		"USD": 1,
	// 		"EUR": 0.9217,
	// 		...
	// 	}
	// }

	addr := ratesURL() + reference
	var jobj any
	// query that endpoint at most once a day
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}

	path := "$.rates"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing rates payload: %q %w", path, err)
	}
	quotes, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rates payload is not an object: %T", jval)
	}

	one := decimal.NewFromInt(1)
	rates := make(map[string]decimal.Decimal, len(quotes))
	for code, v := range quotes {
		q, ok := v.(float64)
		if !ok || q == 0 {
			return nil, fmt.Errorf("invalid quote for %q: %v", code, v)
		}
		rates[code] = one.Div(decimal.NewFromFloat(q))
	}
	rates[reference] = one
	return rates, nil
}
