// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the contact entities: validated field values (Name,
// Phone, Birthday) and the Record that aggregates them. Phones fail hard on
// invalid input; birthdays degrade to an absent value and log a warning.
package model
