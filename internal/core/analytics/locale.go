package analytics

import (
	"time"

	"golang.org/x/text/language"
)

// Locale is the text catalog used for month names and insight messages.
type Locale struct {
	Tag language.Tag

	months   [12]string
	weekdays [7]string // indexed by time.Weekday

	periodMorning   string
	periodAfternoon string
	periodEvening   string
	periodLateNight string

	consistencyHigh string
	consistencyMid  string
	consistencyLow  string
	activeHour      string
	activeWeekday   string
}

var English = Locale{
	Tag: language.English,
	months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	periodMorning:   "morning",
	periodAfternoon: "afternoon/evening",
	periodEvening:   "evening",
	periodLateNight: "late night",
	consistencyHigh: "Excellent consistency! You were active on %.1f%% of the days this month.",
	consistencyMid:  "Fairly consistent (%.1f%%). Keep it up!",
	consistencyLow:  "Consistency is still low (%.1f%%). Try setting a daily reminder.",
	activeHour:      "You are most active in the %s (around %d:00).",
	activeWeekday:   "Your most active day is %s.",
}

var Indonesian = Locale{
	Tag: language.Indonesian,
	months: [12]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	},
	weekdays: [7]string{
		"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
	},
	periodMorning:   "pagi",
	periodAfternoon: "siang/sore",
	periodEvening:   "malam",
	periodLateNight: "larut malam",
	consistencyHigh: "Konsistensi sangat baik! Kamu aktif %.1f%% dari hari dalam bulan ini.",
	consistencyMid:  "Konsistensi cukup baik (%.1f%%). Terus tingkatkan!",
	consistencyLow:  "Konsistensi masih rendah (%.1f%%). Coba buat pengingat harian.",
	activeHour:      "Kamu paling aktif di waktu %s (sekitar jam %d).",
	activeWeekday:   "Hari paling aktif adalah %s.",
}

var (
	supportedLocales = []Locale{English, Indonesian}
	localeMatcher    = language.NewMatcher([]language.Tag{English.Tag, Indonesian.Tag})
)

// ParseLocale picks the closest supported locale for a BCP 47 string such as
// "id-ID" or "en-GB". Anything unmatched falls back to English.
func ParseLocale(s string) Locale {
	_, idx, conf := localeMatcher.Match(language.Make(s))
	if conf == language.No {
		return English
	}
	return supportedLocales[idx]
}

func (l Locale) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return "Unknown"
	}
	return l.months[m-1]
}

func (l Locale) WeekdayName(d time.Weekday) string {
	return l.weekdays[d]
}

func (l Locale) period(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return l.periodMorning
	case hour >= 12 && hour <= 17:
		return l.periodAfternoon
	case hour >= 18 && hour <= 21:
		return l.periodEvening
	default:
		return l.periodLateNight
	}
}
