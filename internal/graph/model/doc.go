// Package model contains GraphQL model types.
package model
