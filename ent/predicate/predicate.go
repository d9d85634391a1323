// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// PaymentCredentials is the predicate function for paymentcredentials builders.
type PaymentCredentials func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
