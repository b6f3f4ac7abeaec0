// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/toeirei/addressbook/util/slicest"
)

// Record is a single contact: one name, a sorted set of phone numbers and an
// optional birthday. The name cannot change once the record exists.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord builds a record. Duplicate phones are dropped and the rest are
// validated in order; the first invalid phone aborts construction. The
// birthday never fails, see NewBirthday.
func NewRecord(name, birthday string, phones ...string) (*Record, error) {
	ps, err := parsePhones(phones)
	if err != nil {
		return nil, err
	}
	return &Record{
		name:     NewName(name),
		phones:   normalize(ps),
		birthday: NewBirthday(birthday),
	}, nil
}

func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the stored numbers in ascending order.
func (r *Record) Phones() []string {
	return slicest.Map(r.phones, Phone.String)
}

func (r *Record) Birthday() Birthday { return r.birthday }

// SetBirthday replaces the birthday using the same rules as NewBirthday.
func (r *Record) SetBirthday(s string) { r.birthday = NewBirthday(s) }

// AddPhone merges phones into the record. The whole batch is validated
// before anything changes, so an invalid number leaves the record as it was.
func (r *Record) AddPhone(phones ...string) error {
	incoming, err := parsePhones(phones)
	if err != nil {
		return err
	}
	r.phones = normalize(append(slices.Clone(r.phones), incoming...))
	return nil
}

// RemovePhone deletes the given numbers. Every number must be present;
// otherwise a *NotFoundError is returned and nothing is removed.
func (r *Record) RemovePhone(phones ...string) error {
	targets, err := parsePhones(phones)
	if err != nil {
		return err
	}
	for _, p := range targets {
		if !slices.Contains(r.phones, p) {
			return &NotFoundError{Value: p.String()}
		}
	}
	r.phones = slices.DeleteFunc(slices.Clone(r.phones), func(p Phone) bool {
		return slices.Contains(targets, p)
	})
	return nil
}

// ChangePhone replaces oldPhone with newPhone and keeps the list sorted.
func (r *Record) ChangePhone(oldPhone, newPhone string) error {
	o, err := NewPhone(oldPhone)
	if err != nil {
		return err
	}
	i := slices.Index(r.phones, o)
	if i < 0 {
		return &NotFoundError{Value: oldPhone}
	}
	n, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	phones := slices.Clone(r.phones)
	phones[i] = n
	r.phones = normalize(phones)
	return nil
}

// DaysToBirthday returns the number of days from today's date until the next
// birthday, counting today as zero. It reports false when no birthday is set.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	bd, ok := r.birthday.Time()
	if !ok {
		return 0, false
	}
	y, m, d := today.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	next := time.Date(y, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(from) {
		next = time.Date(y+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(from) / (24 * time.Hour)), true
}

// SearchString is the text that book searches match against.
func (r *Record) SearchString() string {
	return strings.Join([]string{
		r.name.String(),
		strings.Join(r.Phones(), " "),
		r.birthday.String(),
	}, " ")
}

func (r *Record) String() string {
	quoted := slicest.Map(r.phones, func(p Phone) string { return "'" + p.String() + "'" })
	return fmt.Sprintf("name: %s, phones: [%s], birthday: %s",
		r.name, strings.Join(quoted, ", "), r.birthday)
}

func parsePhones(phones []string) ([]Phone, error) {
	return slicest.MapX(slicest.Unique(phones), NewPhone)
}

// normalize sorts ps ascending and drops duplicates.
func normalize(ps []Phone) []Phone {
	slices.SortFunc(ps, Phone.Compare)
	return slices.Compact(ps)
}
