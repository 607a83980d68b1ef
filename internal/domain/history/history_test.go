package history_test

import (
	"testing"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/history"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func people(ids ...int) []*model.Person {
	out := make([]*model.Person, len(ids))
	for i, id := range ids {
		out[i] = &model.Person{ID: id}
	}
	return out
}

func TestBuild(t *testing.T) {
	Convey("Given no previous draws", t, func() {
		idx := history.Build(nil)

		Convey("Then nobody has been paired", func() {
			So(idx.Len(), ShouldEqual, 0)
			So(idx.Paired(1, 2), ShouldBeFalse)
		})
	})

	Convey("Given two previous draws", t, func() {
		draws := []model.Draw{
			{Groups: []model.Group{
				{People: people(1, 2)},
				{People: people(3, 4, 5)},
			}},
			{Groups: []model.Group{
				{People: people(1, 3)},
				{People: people(2, 4)},
			}},
		}
		idx := history.Build(draws)

		Convey("Then pairs are recorded in both directions", func() {
			So(idx.Paired(1, 2), ShouldBeTrue)
			So(idx.Paired(2, 1), ShouldBeTrue)
			So(idx.Paired(5, 3), ShouldBeTrue)
		})

		Convey("And every pair of a group is linked, not only neighbours", func() {
			So(idx.Paired(3, 5), ShouldBeTrue)
			So(idx.Paired(4, 3), ShouldBeTrue)
		})

		Convey("And pairs from different draws are unioned", func() {
			So(idx.Paired(1, 3), ShouldBeTrue)
			So(idx.Paired(4, 2), ShouldBeTrue)
			So(idx.Len(), ShouldEqual, 5)
		})

		Convey("And people in different groups are not paired", func() {
			So(idx.Paired(1, 5), ShouldBeFalse)
			So(idx.Paired(1, 1), ShouldBeFalse)
		})

		Convey("And unknown ids are never paired", func() {
			So(idx.Paired(42, 1), ShouldBeFalse)
		})
	})

	Convey("Given a nil index", t, func() {
		var idx *history.Index

		Convey("Then queries are safe", func() {
			So(idx.Paired(1, 2), ShouldBeFalse)
			So(idx.Len(), ShouldEqual, 0)
		})
	})
}
