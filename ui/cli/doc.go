// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for the address book
// using Cobra. It wires configuration, logging, i18n and the contact store,
// and provides commands that load the book, apply one change and save it back.
package cli
