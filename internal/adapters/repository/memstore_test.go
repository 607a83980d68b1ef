package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/Moefedaily/Brief-creation-groupe/internal/adapters/repository"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/metrics"
)

var fixedNow = time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)

func newStore() *repository.MemoryStore {
	n := 0
	return repository.NewMemoryStore(
		repository.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		repository.WithClock(func() time.Time { return fixedNow }),
		repository.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))),
	)
}

func person(name string) model.Person {
	return model.Person{
		Name:           name,
		Gender:         model.GenderFemale,
		FrenchFluency:  3,
		TechnicalLevel: 2,
		Profile:        model.ProfileShy,
		Age:            30,
	}
}

func TestMemoryStore_Rosters(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := newStore()

		Convey("When creating a roster", func() {
			r, err := store.CreateRoster(ctx, "  Promo 2024 ")

			Convey("Then it gets an id and a trimmed name", func() {
				So(err, ShouldBeNil)
				So(r.ID, ShouldEqual, "id-1")
				So(r.Name, ShouldEqual, "Promo 2024")
				So(r.People, ShouldBeEmpty)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And creating another with the same name in other case", func() {
				_, err := store.CreateRoster(ctx, "promo 2024")

				Convey("Then it is rejected as a duplicate", func() {
					So(errors.Is(err, repository.ErrDuplicateName), ShouldBeTrue)
					So(store.Count(ctx), ShouldEqual, 1)
				})
			})

			Convey("And renaming it", func() {
				renamed, err := store.RenameRoster(ctx, r.ID, "Promo B")
				So(err, ShouldBeNil)
				So(renamed.Name, ShouldEqual, "Promo B")

				got, err := store.GetRoster(ctx, r.ID)
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, "Promo B")
			})

			Convey("And renaming it to its own name in other case", func() {
				_, err := store.RenameRoster(ctx, r.ID, "PROMO 2024")
				So(err, ShouldBeNil)
			})

			Convey("And deleting it", func() {
				So(store.DeleteRoster(ctx, r.ID), ShouldBeNil)
				_, err := store.GetRoster(ctx, r.ID)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(store.DeleteRoster(ctx, r.ID), repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When creating a roster with a blank name", func() {
			_, err := store.CreateRoster(ctx, "   ")
			So(errors.Is(err, repository.ErrInvalidName), ShouldBeTrue)
		})

		Convey("When listing several rosters", func() {
			_, _ = store.CreateRoster(ctx, "beta")
			_, _ = store.CreateRoster(ctx, "Alpha")
			_, _ = store.CreateRoster(ctx, "gamma")

			Convey("Then they are ordered by name ignoring case", func() {
				list := store.ListRosters(ctx)
				So(len(list), ShouldEqual, 3)
				So(list[0].Name, ShouldEqual, "Alpha")
				So(list[1].Name, ShouldEqual, "beta")
				So(list[2].Name, ShouldEqual, "gamma")
			})
		})

		Convey("When using an unknown roster id", func() {
			_, err := store.RenameRoster(ctx, "nope", "x")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			_, err = store.AddPerson(ctx, "nope", person("Alice"))
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			_, err = store.Draws(ctx, "nope")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestMemoryStore_People(t *testing.T) {
	Convey("Given a roster", t, func() {
		ctx := context.Background()
		store := newStore()
		r, _ := store.CreateRoster(ctx, "Promo")

		Convey("When adding people", func() {
			alice, err := store.AddPerson(ctx, r.ID, person("Alice"))
			So(err, ShouldBeNil)
			bob, err := store.AddPerson(ctx, r.ID, person("Bob"))
			So(err, ShouldBeNil)

			Convey("Then ids are assigned in sequence", func() {
				So(alice.ID, ShouldEqual, 1)
				So(bob.ID, ShouldEqual, 2)
			})

			Convey("And a deleted id is never reused", func() {
				So(store.DeletePerson(ctx, r.ID, bob.ID), ShouldBeNil)
				carol, err := store.AddPerson(ctx, r.ID, person("Carol"))
				So(err, ShouldBeNil)
				So(carol.ID, ShouldEqual, 3)

				got, _ := store.GetRoster(ctx, r.ID)
				So(len(got.People), ShouldEqual, 2)
				So(got.People[0].Name, ShouldEqual, "Alice")
				So(got.People[1].Name, ShouldEqual, "Carol")
			})

			Convey("And updating a person replaces its fields", func() {
				alice.Age = 41
				alice.Profile = model.ProfileComfortable
				_, err := store.UpdatePerson(ctx, r.ID, alice)
				So(err, ShouldBeNil)

				got, _ := store.GetRoster(ctx, r.ID)
				So(got.People[0].Age, ShouldEqual, 41)
				So(got.People[0].Profile, ShouldEqual, model.ProfileComfortable)
			})

			Convey("And mutating a returned roster leaves the store untouched", func() {
				got, _ := store.GetRoster(ctx, r.ID)
				got.People[0].Name = "Mallory"

				again, _ := store.GetRoster(ctx, r.ID)
				So(again.People[0].Name, ShouldEqual, "Alice")
			})

			Convey("And unknown person ids are reported", func() {
				ghost := person("Ghost")
				ghost.ID = 99
				_, err := store.UpdatePerson(ctx, r.ID, ghost)
				So(errors.Is(err, repository.ErrPersonNotFound), ShouldBeTrue)
				So(errors.Is(store.DeletePerson(ctx, r.ID, 99), repository.ErrPersonNotFound), ShouldBeTrue)
			})
		})

		Convey("When adding an invalid person", func() {
			p := person("Al")
			_, err := store.AddPerson(ctx, r.ID, p)

			Convey("Then it is rejected without consuming an id", func() {
				So(errors.Is(err, repository.ErrInvalidPerson), ShouldBeTrue)
				ok, err := store.AddPerson(ctx, r.ID, person("Alice"))
				So(err, ShouldBeNil)
				So(ok.ID, ShouldEqual, 1)
			})
		})
	})
}

func TestMemoryStore_Draws(t *testing.T) {
	Convey("Given a roster with four people", t, func() {
		ctx := context.Background()
		store := newStore()
		r, _ := store.CreateRoster(ctx, "Promo")
		for _, name := range []string{"Alice", "Bruno", "Chloe", "David"} {
			_, _ = store.AddPerson(ctx, r.ID, person(name))
		}
		got, _ := store.GetRoster(ctx, r.ID)
		people := got.People

		draw := model.Draw{
			ID:   "provisional",
			Date: time.Unix(0, 0),
			Groups: []model.Group{
				{ID: "g-1", Name: "Group 1", People: people[:2]},
				{Name: "Group 2", People: people[2:]},
			},
			Criteria: model.Criteria{MixGender: true},
		}

		Convey("When saving a draw", func() {
			saved, err := store.SaveDraw(ctx, r.ID, draw)

			Convey("Then the store assigns the final identity and timestamp", func() {
				So(err, ShouldBeNil)
				So(saved.ID, ShouldNotEqual, "provisional")
				So(saved.Date, ShouldEqual, fixedNow)
				So(saved.RosterID, ShouldEqual, r.ID)
				So(saved.Groups[0].ID, ShouldEqual, "g-1")
				So(saved.Groups[1].ID, ShouldNotBeEmpty)
				So(saved.Criteria.MixGender, ShouldBeTrue)
			})

			Convey("Then it is listed in history", func() {
				draws, err := store.Draws(ctx, r.ID)
				So(err, ShouldBeNil)
				So(len(draws), ShouldEqual, 1)
				So(draws[0].ID, ShouldEqual, saved.ID)
				So(model.Size(draws[0].Groups), ShouldEqual, 4)
			})

			Convey("Then later draws get ids that sort after it", func() {
				next, err := store.SaveDraw(ctx, r.ID, draw)
				So(err, ShouldBeNil)
				So(len(next.ID), ShouldEqual, 26)
				So(next.ID, ShouldBeGreaterThan, saved.ID)
			})

			Convey("Then later edits to people do not rewrite history", func() {
				p := *people[0]
				p.Name = "Alicia"
				_, err := store.UpdatePerson(ctx, r.ID, p)
				So(err, ShouldBeNil)

				draws, _ := store.Draws(ctx, r.ID)
				So(draws[0].Groups[0].People[0].Name, ShouldEqual, "Alice")
			})
		})

		Convey("When saving a draw with an unknown person", func() {
			stranger := person("Stranger")
			stranger.ID = 42
			draw.Groups[1].People = []*model.Person{&stranger}
			_, err := store.SaveDraw(ctx, r.ID, draw)
			So(errors.Is(err, repository.ErrInvalidDraw), ShouldBeTrue)
		})

		Convey("When saving a draw placing someone twice", func() {
			draw.Groups[1].People = append([]*model.Person{people[0]}, people[2:]...)
			_, err := store.SaveDraw(ctx, r.ID, draw)
			So(errors.Is(err, repository.ErrInvalidDraw), ShouldBeTrue)
		})

		Convey("When saving a draw with no groups", func() {
			_, err := store.SaveDraw(ctx, r.ID, model.Draw{})
			So(errors.Is(err, repository.ErrInvalidDraw), ShouldBeTrue)
		})
	})
}

func TestMemoryStore_Concurrency(t *testing.T) {
	Convey("Given concurrent writers on one roster", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(
			repository.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))),
		)
		r, _ := store.CreateRoster(ctx, "Promo")

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _ = store.AddPerson(ctx, r.ID, person(fmt.Sprintf("Person %02d", i)))
				_, _ = store.GetRoster(ctx, r.ID)
			}(i)
		}
		wg.Wait()

		Convey("Then every person gets a distinct id", func() {
			got, _ := store.GetRoster(ctx, r.ID)
			So(len(got.People), ShouldEqual, 50)
			seen := map[int]bool{}
			for _, p := range got.People {
				seen[p.ID] = true
			}
			So(len(seen), ShouldEqual, 50)
		})
	})
}
