package entities

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestDatesAcceptsValidFormats(t *testing.T) {
	text := "पहली तारीख 15/08/2023 को, फिर 5 January 2024 और 12 मार्च 2023 को सुनवाई।"

	got := Dates(text)
	want := []string{"15/08/2023", "5 January 2024", "12 मार्च 2023"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dates() = %v, want %v", got, want)
	}
}

func TestDatesRejectsImpossibleDayAndMonth(t *testing.T) {
	if got := Dates("मिलने की तारीख 32/13/2024 लिखी थी"); len(got) != 0 {
		t.Fatalf("Dates() = %v, want no matches for impossible date", got)
	}
	if got := Dates("00/00/2024"); len(got) != 0 {
		t.Fatalf("Dates() = %v, want no matches for zero date", got)
	}
}

func TestDatesCappedAtFive(t *testing.T) {
	var b strings.Builder
	for day := 1; day <= 20; day++ {
		fmt.Fprintf(&b, "%02d/01/2024 ", day)
	}

	got := Dates(b.String())
	if len(got) != 5 {
		t.Fatalf("Dates() returned %d entries, want cap of 5", len(got))
	}
	if got[0] != "01/01/2024" {
		t.Fatalf("Dates()[0] = %s, want first-seen order preserved", got[0])
	}
}

func TestExtractAmounts(t *testing.T) {
	got := Extract("Rs. 45,000 was paid as advance")
	if !reflect.DeepEqual(got.Amounts, []string{"45,000"}) {
		t.Fatalf("Amounts = %v, want [45,000]", got.Amounts)
	}

	got = Extract("कुल 5000 रुपये जमा किए")
	if !reflect.DeepEqual(got.Amounts, []string{"5000"}) {
		t.Fatalf("Amounts = %v, want [5000]", got.Amounts)
	}

	got = Extract("no currency markers around 45000 here")
	if len(got.Amounts) != 0 {
		t.Fatalf("Amounts = %v, want none without a currency marker", got.Amounts)
	}
}

func TestExtractContactDetails(t *testing.T) {
	text := "संपर्क करें: 9876543210 या help@example.com पर"

	got := Extract(text)
	if !reflect.DeepEqual(got.Phones, []string{"9876543210"}) {
		t.Fatalf("Phones = %v, want [9876543210]", got.Phones)
	}
	if !reflect.DeepEqual(got.Emails, []string{"help@example.com"}) {
		t.Fatalf("Emails = %v, want [help@example.com]", got.Emails)
	}
}

func TestExtractContactDetailsCappedAtFour(t *testing.T) {
	text := "फोन: 9811111111, 9822222222, 9833333333, 9844444444, 9855555555" +
		" ईमेल: a@ex.in b@ex.in c@ex.in d@ex.in e@ex.in"

	got := Extract(text)
	want := []string{"9811111111", "9822222222", "9833333333", "9844444444"}
	if !reflect.DeepEqual(got.Phones, want) {
		t.Fatalf("Phones = %v, want first four in document order", got.Phones)
	}
	if len(got.Emails) != 4 || got.Emails[0] != "a@ex.in" {
		t.Fatalf("Emails = %v, want first four in document order", got.Emails)
	}
}

func TestExtractRejectsInvalidPhone(t *testing.T) {
	// Indian mobile numbers start with 6-9.
	got := Extract("गलत नंबर 1234567890 लिखा है")
	if len(got.Phones) != 0 {
		t.Fatalf("Phones = %v, want none for number starting with 1", got.Phones)
	}
}

func TestExtractCaseAndFIRNumbers(t *testing.T) {
	got := Extract("Case No. 45/2023 में FIR No. 123/2024 संलग्न है")
	if !reflect.DeepEqual(got.CaseNumbers, []string{"45/2023", "123/2024"}) {
		t.Fatalf("CaseNumbers = %v, want [45/2023 123/2024]", got.CaseNumbers)
	}
}

func TestExtractNames(t *testing.T) {
	got := Extract("Name: Ram Kumar, निवासी ग्राम रामपुर। Shri Mohan Lal उपस्थित थे।")
	if !reflect.DeepEqual(got.Names, []string{"Ram Kumar", "Mohan Lal"}) {
		t.Fatalf("Names = %v, want [Ram Kumar, Mohan Lal]", got.Names)
	}
}

func TestExtractResumeFields(t *testing.T) {
	text := strings.Join([]string{
		"Objective: software engineering role",
		"Education: B.Tech in Computer Science",
		"3 years of experience in development",
		"Skills: Python, SQL, Excel",
		"",
		"References available on request",
	}, "\n")

	got := Extract(text)
	if !got.IsResume {
		t.Fatalf("IsResume = false, want true")
	}
	if !reflect.DeepEqual(got.Skills, []string{"Python", "SQL", "Excel"}) {
		t.Fatalf("Skills = %v, want [Python, SQL, Excel]", got.Skills)
	}
	if len(got.Education) == 0 || !strings.EqualFold(got.Education[0], "B.Tech") {
		t.Fatalf("Education = %v, want B.Tech first", got.Education)
	}
	if len(got.Experience) != 1 || !strings.Contains(got.Experience[0], "3 years") {
		t.Fatalf("Experience = %v, want one 3-years entry", got.Experience)
	}
}

func TestExtractNonResumeSkipsResumeFields(t *testing.T) {
	got := Extract("court order for case no 12/2020, धारा 144 लागू")
	if got.IsResume {
		t.Fatalf("IsResume = true for a court order")
	}
	if got.Skills != nil || got.Education != nil || got.Experience != nil {
		t.Fatalf("resume fields populated for non-resume text: %+v", got)
	}
}

func TestIsResumeLikeNeedsThreeIndicators(t *testing.T) {
	if IsResumeLike("education and experience mentioned") {
		t.Fatalf("IsResumeLike() = true with two indicators")
	}
	if !IsResumeLike("education, experience and skills section") {
		t.Fatalf("IsResumeLike() = false with three indicators")
	}
}
