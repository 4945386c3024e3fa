// Package topic maps free-text category labels onto the fixed reporting
// taxonomy. Classification is an ordered cascade of keyword groups evaluated
// top to bottom; the first group with any substring match wins. Order is
// load-bearing because groups overlap (a charge naming both a drug and a
// traffic offense must land on drugs), so the cascade is a slice, never a map
package topic

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Topic is a canonical incident category
type Topic string

// The fixed taxonomy, in cascade priority order
const (
	Drugs       Topic = "drugs"
	Weapons     Topic = "weapons"
	HeavyTruck  Topic = "heavy_truck"
	Warrant     Topic = "warrant"
	DUI         Topic = "dui"
	Immigration Topic = "immigration"
	Gambling    Topic = "gambling"
	Theft       Topic = "theft"
	Traffic     Topic = "traffic"
	Other       Topic = "other"
)

type group struct {
	topic    Topic
	keywords []string
}

// cascade order is the classification priority; do not sort or reorder
var cascade = []group{
	{Drugs, []string{"ยาเสพติด", "ยาบ้า", "ไอซ์", "เฮโรอีน", "เคตามีน", "กัญชา", "กระท่อม"}},
	{Weapons, []string{"อาวุธ", "ปืน", "เครื่องกระสุน", "วัตถุระเบิด"}},
	{HeavyTruck, []string{"รถบรรทุก", "น้ำหนักเกิน"}},
	{Warrant, []string{"หมายจับ"}},
	{DUI, []string{"เมาแล้วขับ", "เมาสุรา", "แอลกอฮอล์"}},
	{Immigration, []string{"ต่างด้าว", "หลบหนีเข้าเมือง", "คนเข้าเมือง"}},
	{Gambling, []string{"การพนัน", "พนัน"}},
	{Theft, []string{"ลักทรัพย์", "รับของโจร", "ยักยอก"}},
	{Traffic, []string{"จราจร", "ขับรถ"}},
}

// Normalize classifies a raw label. Unmatched, empty, or absent labels map to
// Other; every label maps to exactly one topic
func Normalize(rawLabel string) Topic {
	s := Fold(rawLabel)
	if s == "" {
		return Other
	}
	for _, g := range cascade {
		for _, kw := range g.keywords {
			if strings.Contains(s, kw) {
				return g.topic
			}
		}
	}
	return Other
}

// Fold canonicalizes a label for matching: Unicode NFC plus width folding of
// fullwidth forms. No case folding or stemming; matching stays byte-exact
func Fold(s string) string {
	if s == "" {
		return ""
	}
	return norm.NFC.String(width.Fold.String(strings.TrimSpace(s)))
}

// Offense is one of the fourteen named crime-table offense column families
type Offense struct {
	// Key is the column suffix: dir_f_<key> and dir_w_<key>
	Key string
	// Label is the display charge text carried onto expanded cases
	Label string
	Topic Topic
}

// offenses in crime-table column order
var offenses = []Offense{
	{"drugs", "ยาเสพติด", Drugs},
	{"weapons", "อาวุธปืน", Weapons},
	{"gambling", "การพนัน", Gambling},
	{"immigration", "คนเข้าเมือง", Immigration},
	{"human_traffic", "ค้ามนุษย์", Other},
	{"forest", "ป่าไม้และทรัพยากร", Other},
	{"customs", "ศุลกากร", Other},
	{"liquor", "สุราและยาสูบ", Other},
	{"dui", "เมาแล้วขับ", DUI},
	{"truck", "รถบรรทุกน้ำหนักเกิน", HeavyTruck},
	{"theft", "ลักทรัพย์", Theft},
	{"assault", "ทำร้ายร่างกาย", Other},
	{"fraud", "ฉ้อโกง", Other},
	{"other", "อื่นๆ", Other},
}

// Offenses returns the offense families in column order
func Offenses() []Offense { return offenses }
