package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// MaxDamageDice bounds the die count of a damage expression.
const MaxDamageDice = 100

var damageNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:\s*([+-])\s*(\d+))?(?:\s+([a-z][a-z ]*))?$`)

// Damage is a parsed NdM[+/-K][ type] expression.
type Damage struct {
	Count    int    `json:"count"`
	Sides    int    `json:"sides"`
	Modifier int    `json:"modifier"`
	Type     string `json:"type,omitempty"`
}

// ParseDamage parses compact damage notation such as "2d6+3 fire".
func ParseDamage(notation string) (Damage, error) {
	matches := damageNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return Damage{}, errors.InvalidArgumentf("invalid damage notation: %q (expected NdM[+/-K][ type])", notation)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return Damage{}, errors.InvalidArgumentf("invalid dice count in notation: %q", notation)
	}
	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return Damage{}, errors.InvalidArgumentf("invalid die size in notation: %q", notation)
	}
	if count <= 0 || sides <= 0 {
		return Damage{}, errors.InvalidArgumentf("dice count and size must be positive: %q", notation)
	}
	if count > MaxDamageDice {
		return Damage{}, errors.InvalidArgumentf("at most %d dice per damage roll: %q", MaxDamageDice, notation)
	}

	d := Damage{Count: count, Sides: sides, Type: strings.TrimSpace(matches[5])}
	if matches[4] != "" {
		k, err := strconv.Atoi(matches[4])
		if err != nil {
			return Damage{}, errors.InvalidArgumentf("invalid modifier in notation: %q", notation)
		}
		if matches[3] == "-" {
			k = -k
		}
		d.Modifier = k
	}
	return d, nil
}

// String renders the expression back in compact notation.
func (d Damage) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dd%d", d.Count, d.Sides)
	if d.Modifier != 0 {
		fmt.Fprintf(&b, "%+d", d.Modifier)
	}
	if d.Type != "" {
		b.WriteString(" ")
		b.WriteString(d.Type)
	}
	return b.String()
}
