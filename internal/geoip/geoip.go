// Package geoip resolves client IPs to coarse locations. Lookups are a
// black box to the rest of the service: they degrade to "Unknown" fields
// and never fail a request.
package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

const unknown = "Unknown"

// Location is the coarse geo classification of one IP
type Location struct {
	Country string
	City    string
	Region  string
}

// Resolver maps an IP to a Location. Implementations must not return
// errors; unresolvable input yields Unknown fields.
type Resolver interface {
	Lookup(ip string) Location
}

type maxmindResolver struct {
	reader *geoip2.Reader
}

// NewMaxMindResolver opens a MaxMind City database (mmdb file)
func NewMaxMindResolver(dbPath string) (Resolver, error) {
	reader, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open GeoIP database: %w", err)
	}
	return &maxmindResolver{reader: reader}, nil
}

func (r *maxmindResolver) Lookup(ip string) Location {
	loc := Location{Country: unknown, City: unknown, Region: unknown}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return loc
	}

	record, err := r.reader.City(parsed)
	if err != nil {
		return loc
	}

	if record.Country.IsoCode != "" {
		loc.Country = record.Country.IsoCode
	}
	if name, ok := record.City.Names["en"]; ok && name != "" {
		loc.City = name
	}
	if len(record.Subdivisions) > 0 && record.Subdivisions[0].IsoCode != "" {
		loc.Region = record.Subdivisions[0].IsoCode
	}

	return loc
}

type noopResolver struct{}

// NewNoopResolver returns a resolver used when no GeoIP database is
// configured; every lookup is Unknown.
func NewNoopResolver() Resolver {
	return noopResolver{}
}

func (noopResolver) Lookup(string) Location {
	return Location{Country: unknown, City: unknown, Region: unknown}
}
