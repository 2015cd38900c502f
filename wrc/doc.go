// Package wrc is a typed client for the WRC results REST API.
//
// It covers the active-season calendar endpoint and the per-event results
// endpoints (itinerary, cars, penalties, retirements, result, stage winners,
// per-stage results, stage times, split times, start lists).
//
// The client is deliberately thin: it builds the endpoint URL, performs one
// synchronous GET, and decodes the JSON body into the types in this package.
// There are no retries and no caching; transport failures and unexpected
// payload shapes surface as errors to the caller. Lookups that simply find
// nothing are not errors; see package reshape.
package wrc
