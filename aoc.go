// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the funcs
// in src, keyed by func name. A sample without input reuses the input of the
// previous sample in the same file.
func extractSamples(name string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractAllSamples merges the samples of every .go file at the root of src.
func extractAllSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	if len(names) == 0 {
		log.Fatalf("no source files to extract samples from")
	}
	all := make(map[string]sample)
	for _, name := range names {
		samples, err := extractSamples(name, MustGet(fs.ReadFile(src, name)))
		if err != nil {
			log.Fatal(err)
		}
		for k, v := range samples {
			if _, dup := all[k]; dup {
				log.Fatalf("sample for %v defined twice (second in %s)", k, name)
			}
			all[k] = v
		}
	}
	return all
}

// Puzzle is embedded by solvers. It is set by Run before each part is
// solved and gives access to that part's input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(flagInputs, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

// Input returns the puzzle input, or the sample input in sample mode.
// Real input is read from the inputs directory, fetching and caching it
// on first use.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(p.inputPath(), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the input split into lines, without a trailing empty line.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// debugOut is where Debug and Debugf write.
var debugOut io.Writer = os.Stdout

// Debug prints v with -debug, on both sample and real input.
func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Fprintln(debugOut, v...)
	}
}

// Debugf prints a line when running the sample with -debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Fprintf(debugOut, format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of the struct x named D{day}p{part}, one
// for each day/part of Advent of Code. The methods must have the
// signature func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("method %v has type %v; want func() any", mn, v.Method(i).Type())
		}
		d, part := Int(matches[1]), matches[2]
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

// attach points the embedded *Puzzle of slvr at p.
func attach(slvr any, p *Puzzle) {
	f := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !f.IsValid() {
		log.Fatalf("%T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", ".", "directory holding <year>/<day>.input files")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	attach(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching isn't timed.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

func sortedDays(days map[int]day) []int {
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	return dayNums
}

// Run solves the puzzles of year registered as methods on slvr, which
// must be a pointer to a struct embedding *Puzzle. Samples are read from
// the doc comments in the .go files of src.
func Run(year int, src fs.FS, slvr any) {
	samples := extractAllSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	for _, day := range sortedDays(days) {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// Mismatch is a part whose answer on its sample input differs from the
// sample's wanted answer.
type Mismatch struct {
	Name      string
	Got, Want string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s = %s; want %s", m.Name, m.Got, m.Want)
}

// CheckSamples runs every part of slvr that has a sample in src and
// returns the ones that got the wrong answer. It never reads real input.
func CheckSamples(src fs.FS, slvr any) []Mismatch {
	samples := extractAllSamples(src)
	days := extractMethods(slvr)
	var out []Mismatch
	for _, d := range sortedDays(days) {
		p := &Puzzle{
			day:        days[d],
			samples:    samples,
			SampleMode: true,
		}
		attach(slvr, p)
		for _, ps := range days[d].parts {
			s, ok := samples[ps.Name]
			if !ok {
				continue
			}
			p.solver = ps
			if got := fmt.Sprint(ps.fn()); got != s.want {
				out = append(out, Mismatch{Name: ps.Name, Got: got, Want: s.want})
			}
		}
	}
	return out
}

var session = sync.OnceValue(func() string {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.Header.Set("User-Agent", "github.com/joltage/aoc")
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
