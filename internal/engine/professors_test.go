// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"reflect"
	"testing"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

func TestAllProfessorsSortedByTotalWorks(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("a1", "Ana Gómez", "2023-01-01", "articulo", "ia", ""),
		pub("b1", "Luis Pérez", "2022-01-01", "articulo", "redes", ""),
		pub("b2", "Luis Pérez", "2021-01-01", "libro", "redes", ""),
		pub("b3", "Luis Pérez", "2020-01-01", "", "", ""),
		pub("a2", "Ana Gómez", "2019-01-01", "articulo", "vision", ""),
	}}
	e := newTestEngine(t, coll)

	list, err := e.AllProfessors(context.Background())
	if err != nil {
		t.Fatalf("AllProfessors: %v", err)
	}
	if list.TotalProfessors != 2 {
		t.Fatalf("TotalProfessors = %d, want 2", list.TotalProfessors)
	}
	if list.Professors[0].Name != "Luis Pérez" || list.Professors[0].TotalWorks != 3 {
		t.Errorf("first = %+v, want Luis Pérez with 3 works", list.Professors[0])
	}

	ana := list.Professors[1]
	if ana.TotalWorks != 2 {
		t.Errorf("Ana total = %d, want 2", ana.TotalWorks)
	}
	if !reflect.DeepEqual(ana.Categories, []string{"ia", "vision"}) {
		t.Errorf("Ana categories = %v", ana.Categories)
	}
	if ana.WorkTypes["articulo"] != 2 {
		t.Errorf("Ana work types = %v", ana.WorkTypes)
	}

	// Records with an empty production type land in the Unknown bucket.
	if list.Professors[0].WorkTypes["Unknown"] != 1 {
		t.Errorf("Luis work types = %v, want an Unknown entry", list.Professors[0].WorkTypes)
	}
}

// Corpus scenario: three records for one professor, one with a sentinel
// date. The sentinel record is deprioritized, not dropped, and it
// contributes no active year.
func TestProfessorProfileStatistics(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("w2", "Ana Gómez", "2021-06-01", "articulo", "ia", ""),
		pub("w3", "Ana Gómez", "-", "articulo", "ia", ""),
		pub("w1", "Ana Gómez", "2023-01-01", "articulo", "ia", ""),
	}}
	e := newTestEngine(t, coll)

	profile, err := e.ProfessorProfile(context.Background(), "Ana Gómez")
	if err != nil {
		t.Fatalf("ProfessorProfile: %v", err)
	}
	if profile == nil {
		t.Fatal("ProfessorProfile returned nil for an existing professor")
	}

	if profile.Stats.TotalWorks != 3 {
		t.Errorf("TotalWorks = %d, want 3", profile.Stats.TotalWorks)
	}
	if !reflect.DeepEqual(profile.Stats.ActiveYears, []string{"2023", "2021"}) {
		t.Errorf("ActiveYears = %v, want [2023 2021]", profile.Stats.ActiveYears)
	}

	got := make([]string, 0, len(profile.Works))
	for _, w := range profile.Works {
		got = append(got, w.ID)
	}
	if !reflect.DeepEqual(got, []string{"w1", "w2", "w3"}) {
		t.Errorf("work order = %v, want [w1 w2 w3] (unparseable date last)", got)
	}
	if len(profile.Stats.RecentWorks) != 3 || profile.Stats.RecentWorks[0].ID != "w1" {
		t.Errorf("RecentWorks = %+v", profile.Stats.RecentWorks)
	}
}

func TestProfessorProfileClassification(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("t1", "Ana Gómez", "2023-01-01", "material de docencia", "", ""),
		pub("p1", "Ana Gómez", "2022-01-01", "proyecto de investigacion", "", ""),
		pub("r1", "Ana Gómez", "2021-01-01", "articulo", "", ""),
	}}
	e := newTestEngine(t, coll)

	profile, err := e.ProfessorProfile(context.Background(), "Ana Gómez")
	if err != nil {
		t.Fatalf("ProfessorProfile: %v", err)
	}

	if len(profile.Stats.Teaching) != 1 || profile.Stats.Teaching[0].ID != "t1" {
		t.Errorf("Teaching = %+v", profile.Stats.Teaching)
	}
	// "proyecto" wins over research even though the type also says
	// "investigacion": teaching is checked first, then projects.
	if len(profile.Stats.Projects) != 1 || profile.Stats.Projects[0].ID != "p1" {
		t.Errorf("Projects = %+v", profile.Stats.Projects)
	}
	if len(profile.Stats.Research) != 1 || profile.Stats.Research[0].ID != "r1" {
		t.Errorf("Research = %+v", profile.Stats.Research)
	}
}

func TestProfessorProfileNotFound(t *testing.T) {
	e := newTestEngine(t, &fakeCollection{})

	profile, err := e.ProfessorProfile(context.Background(), "NonexistentName")
	if err != nil {
		t.Fatalf("ProfessorProfile: %v", err)
	}
	if profile != nil {
		t.Errorf("profile = %+v, want nil for unknown professor", profile)
	}
}

func TestProfessorDocumentsRecencyFirst(t *testing.T) {
	records := []types.PublicationRecord{
		pub("old", "Ana Gómez", "2019-01-01", "articulo", "", ""),
		pub("new", "Ana Gómez", "2024-01-01", "articulo", "", ""),
		pub("mid", "Ana Gómez", "2021-01-01", "articulo", "", ""),
	}
	e := newTestEngine(t, &fakeCollection{records: records})

	docs, err := e.ProfessorDocuments(context.Background(), "Ana Gómez", 2)
	if err != nil {
		t.Fatalf("ProfessorDocuments: %v", err)
	}
	want := []string{"titulo new", "titulo mid"}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("docs = %v, want %v", docs, want)
	}
}

func TestAllProfessorNamesSorted(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("1", "Luis Pérez", "2023-01-01", "articulo", "", ""),
		pub("2", "Ana Gómez", "2023-01-01", "articulo", "", ""),
		pub("3", "Ana Gómez", "2022-01-01", "articulo", "", ""),
	}}
	e := newTestEngine(t, coll)

	names, err := e.AllProfessorNames(context.Background())
	if err != nil {
		t.Fatalf("AllProfessorNames: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Ana Gómez", "Luis Pérez"}) {
		t.Errorf("names = %v", names)
	}
}
