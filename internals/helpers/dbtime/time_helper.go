// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync/atomic"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Jakarta"

var appLoc atomic.Pointer[time.Location]

// LoadLocation:
// 1) nama zona yang diminta (misal dari APP_TIMEZONE)
// 2) fallback Asia/Jakarta
// 3) fallback terakhir time.UTC
func LoadLocation(name string) *time.Location {
	if s := strings.TrimSpace(name); s != "" {
		if loc, err := time.LoadLocation(s); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// SetLocation dipanggil sekali saat startup.
func SetLocation(loc *time.Location) {
	if loc != nil {
		appLoc.Store(loc)
	}
}

func Location() *time.Location {
	if loc := appLoc.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// Now = "sekarang" di timezone aplikasi. Tahun nomor surat diambil dari sini.
func Now() time.Time {
	return time.Now().In(Location())
}

// ToLocal mengonversi waktu dari DB (UTC) ke timezone aplikasi.
// Kalau t.IsZero() → dikembalikan apa adanya.
func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}
