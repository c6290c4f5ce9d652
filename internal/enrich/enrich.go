package enrich

import (
	"net"
	"strings"

	"warotator/internal/types"

	"github.com/mssola/useragent"
	"github.com/oschwald/geoip2-golang"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
)

// Enricher derives device, browser, OS and location fields of a click from
// its user agent and IP address. Fields that cannot be derived stay nil and
// are reported as unknown by the stats queries.
type Enricher struct {
	geo *geoip2.Reader
}

// Open loads a GeoLite2/GeoIP2 City database. An empty path gives an
// Enricher that only parses user agents.
func Open(geoPath string) (*Enricher, error) {
	if geoPath == "" {
		return &Enricher{}, nil
	}
	geodatabase, err := geoip2.Open(geoPath)
	if err != nil {
		return nil, err
	}
	return &Enricher{geo: geodatabase}, nil
}

func (e *Enricher) Enrich(c *types.ClickEvent) {
	if c.UserAgent != nil {
		device, browser, os := ParseUserAgent(*c.UserAgent)
		c.DeviceType = types.Optional(device)
		c.Browser = types.Optional(browser)
		c.OS = types.Optional(os)
	}
	if c.IPAddress != nil && e.geo != nil {
		country, city := e.lookup(*c.IPAddress)
		c.Country = types.Optional(country)
		c.City = types.Optional(city)
	}
}

func (e *Enricher) lookup(rawIP string) (country, city string) {
	ip := net.ParseIP(rawIP)
	if ip == nil {
		return "", ""
	}
	record, err := e.geo.City(ip)
	if err != nil {
		return "", ""
	}
	if name, ok := record.Country.Names["en"]; ok {
		country = name
	}
	if name, ok := record.City.Names["en"]; ok {
		city = name
	}
	return country, city
}

func (e *Enricher) Close() error {
	if e.geo != nil {
		return e.geo.Close()
	}
	return nil
}

// ParseUserAgent returns device type, browser name and OS name. Empty
// strings mean the value could not be determined.
func ParseUserAgent(raw string) (device, browser, os string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ""
	}
	ua := useragent.New(raw)

	browser, _ = ua.Browser()
	os = ua.OSInfo().Name

	lower := strings.ToLower(raw)
	switch {
	case ua.Bot():
		device = DeviceBot
	case strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet") ||
		(strings.Contains(lower, "android") && !strings.Contains(lower, "mobile")):
		device = DeviceTablet
	case ua.Mobile():
		device = DeviceMobile
	default:
		device = DeviceDesktop
	}
	return device, browser, os
}
