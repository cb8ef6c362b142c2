package profile

import "testing"

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		start   string
		end     string
		endOpen bool
	}{
		{name: "month_year_present", in: "Jan 2021 - Present", start: "2021-01", end: "", endOpen: true},
		{name: "year_pair", in: "2018 - 2020", start: "2018-01", end: "2020-01"},
		{name: "year_pair_tight", in: "2018-2020", start: "2018-01", end: "2020-01"},
		{name: "month_year_both", in: "Jun 2019–Dec 2020", start: "2019-06", end: "2020-12"},
		{name: "year_to_present", in: "2022 – Present", start: "2022-01", end: "", endOpen: true},
		{name: "iso_pair", in: "2018-06 – 2020-12", start: "2018-06", end: "2020-12"},
		{name: "full_month_names", in: "January 2020 - March 2021", start: "2020-01", end: "2021-03"},
		{name: "to_separator", in: "2019 to 2021", start: "2019-01", end: "2021-01"},
		{name: "current", in: "May 2023 - current", start: "2023-05", end: "", endOpen: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dr := ParseDateRange(tc.in)
			if dr.Start != tc.start || dr.End != tc.end || dr.EndOpen != tc.endOpen {
				t.Fatalf("ParseDateRange(%q) = %+v", tc.in, dr)
			}
		})
	}
}

func TestParseDateRangeUnparseableKeepsRaw(t *testing.T) {
	dr := ParseDateRange("sometime ago - whenever")
	if dr.StartOK || dr.EndOK {
		t.Fatalf("expected both tokens unparseable: %+v", dr)
	}
	if dr.StartRaw != "sometime ago" || dr.EndRaw != "whenever" {
		t.Fatalf("raw tokens not retained: %+v", dr)
	}
}

func TestParseDateRangeEmpty(t *testing.T) {
	dr := ParseDateRange("   ")
	if dr.StartOK || dr.EndOK || dr.StartRaw != "" {
		t.Fatalf("got %+v", dr)
	}
}

func TestFindDateRange(t *testing.T) {
	raw, ok := findDateRange("Senior Engineer, remote role Jun 2019 – Dec 2020 in Berlin")
	if !ok || raw == "" {
		t.Fatal("expected to find a range")
	}
	dr := ParseDateRange(raw)
	if dr.Start != "2019-06" || dr.End != "2020-12" {
		t.Fatalf("range %q parsed to %+v", raw, dr)
	}

	if _, ok := findDateRange("no dates in this text"); ok {
		t.Fatal("false positive range")
	}
}
