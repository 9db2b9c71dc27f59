package main

import (
	"regexp"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

func day1a(input string) (int64, error) {
	return sumCalibrationValues(getLines(input), false), nil
}

func day1b(input string) (int64, error) {
	return sumCalibrationValues(getLines(input), true), nil
}

var digitWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

var (
	digitRegexp     = regexp.MustCompile(`[0-9]`)
	digitWordRegexp = regexp.MustCompile(`[0-9]|one|two|three|four|five|six|seven|eight|nine`)
)

// calibrationValue combines the first and last digit in line into a
// two-digit number. With words, spelled-out digits count too. Matches do not
// overlap, so "eightwo" is only an eight. A line without digits is worth 0.
func calibrationValue(line string, words bool) int {
	re := digitRegexp
	if words {
		re = digitWordRegexp
	}
	matches := re.FindAllString(line, -1)
	if len(matches) == 0 {
		return 0
	}
	return 10*digitValue(matches[0]) + digitValue(matches[len(matches)-1])
}

func digitValue(s string) int {
	if n, ok := digitWords[s]; ok {
		return n
	}
	return int(s[0] - '0')
}

func sumCalibrationValues(lines []string, words bool) int64 {
	var total int64
	for _, line := range lines {
		total += int64(calibrationValue(line, words))
	}
	return total
}
