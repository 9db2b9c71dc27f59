package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func checkEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %# v; want %# v", pretty.Formatter(got), pretty.Formatter(want))
	}
}

func runSolution(t *testing.T, fn solution, input string) int64 {
	t.Helper()
	got, err := fn(input)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestNameLess(t *testing.T) {
	names := []string{"10a", "2b", "9b", "2a", "1b", "10b", "1a"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1a", "1b", "2a", "2b", "9b", "10a", "10b"}
	checkEqual(t, names, want)
}

func TestAllSolutionsRegistered(t *testing.T) {
	var want []string
	for _, day := range []string{"1", "2", "3", "4", "5", "7", "8"} {
		want = append(want, day+"a", day+"b")
	}
	checkEqual(t, sortedNames(), want)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadConfig(filepath.Join(dir, "advent.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "inputs"); cfg.inputDir != want {
		t.Errorf("got input dir %q; want %q", cfg.inputDir, want)
	}
	if len(cfg.answers) != 0 {
		t.Errorf("got %d answers; want 0", len(cfg.answers))
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advent.ini")
	writeFile(t, path, "[inputs]\ndir = puzzles\n\n[answers]\n1a = 142\n8a = 6\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "puzzles"); cfg.inputDir != want {
		t.Errorf("got input dir %q; want %q", cfg.inputDir, want)
	}
	checkEqual(t, cfg.answers, map[string]int64{"1a": 142, "8a": 6})
	if got, want := cfg.inputPath("8a"), filepath.Join(dir, "puzzles", "day08.txt"); got != want {
		t.Errorf("got input path %q; want %q", got, want)
	}
}

func TestLoadConfigBadAnswer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advent.ini")
	writeFile(t, path, "[answers]\n1a = lots\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("got nil error for non-integer answer")
	}
}

func TestCheck(t *testing.T) {
	cfg := &config{answers: map[string]int64{"1a": 142}}
	if err := cfg.check("1a", 142); err != nil {
		t.Errorf("check(1a, 142): %v", err)
	}
	if err := cfg.check("1a", 141); !errors.Is(err, errWrongAnswer) {
		t.Errorf("check(1a, 141): got %v; want %v", err, errWrongAnswer)
	}
	if err := cfg.check("1b", 1); err != nil {
		t.Errorf("check with no known answer: %v", err)
	}
}

const calibrationSample = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"

func TestRunOne(t *testing.T) {
	dir := t.TempDir()
	cfg := &config{
		inputDir: filepath.Join(dir, "inputs"),
		answers:  map[string]int64{"1a": 142},
	}
	writeFile(t, cfg.inputPath("1a"), calibrationSample)

	var out bytes.Buffer
	if err := runOne(cfg, "1a", runOptions{check: true}, &out); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "142\n"; got != want {
		t.Errorf("got output %q; want %q", got, want)
	}

	if err := runOne(cfg, "0z", runOptions{}, &out); err == nil {
		t.Error("got nil error for unknown solution")
	}
}

func TestRunOneKeep(t *testing.T) {
	dir := t.TempDir()
	cfg := &config{inputDir: filepath.Join(dir, "inputs"), answers: map[string]int64{}}
	src := filepath.Join(dir, "download.txt")
	writeFile(t, src, calibrationSample)

	var out bytes.Buffer
	if err := runOne(cfg, "1a", runOptions{input: src, keep: true}, &out); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(cfg.inputPath("1a"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != calibrationSample {
		t.Errorf("kept input is %q; want %q", b, calibrationSample)
	}
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	cfg := &config{
		inputDir: filepath.Join(dir, "inputs"),
		answers:  map[string]int64{"1a": 142, "1b": 142},
	}
	writeFile(t, cfg.inputPath("1a"), calibrationSample)
	writeFile(t, cfg.inputPath("8a"), networkSample)

	var out bytes.Buffer
	if err := runAll(cfg, runOptions{check: true}, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"1a\t142", "1b\t142", "8a\t6", "8b\t6"}
	checkEqual(t, lines, want)

	cfg.answers["8a"] = 7
	out.Reset()
	if err := runAll(cfg, runOptions{check: true}, &out); err == nil {
		t.Error("got nil error with a wrong known answer")
	}
}
