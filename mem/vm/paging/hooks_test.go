package paging

import (
	"bytes"
	"database/sql"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/virtmem/datarecording"
)

var _ = Describe("LogHook", func() {
	It("should write one line per event", func() {
		buf := new(bytes.Buffer)
		hook := NewLogHook(buf)

		hook.Func(HookCtx{Pos: HookPosMiss, Page: 4, Frame: -1})
		hook.Func(HookCtx{Pos: HookPosLoad, Page: 4, Frame: 1})

		Expect(buf.String()).To(Equal(
			"paging: Miss page 4\n" +
				"paging: Load page 4 frame 1\n"))
	})
})

var _ = Describe("RecordingHook", func() {
	It("should store events in order", func() {
		path := filepath.Join(GinkgoT().TempDir(), "events")
		recorder, err := datarecording.New(path)
		Expect(err).NotTo(HaveOccurred())

		hook, err := NewRecordingHook(recorder)
		Expect(err).NotTo(HaveOccurred())

		hook.Func(HookCtx{Pos: HookPosMiss, Page: 2, Frame: -1})
		hook.Func(HookCtx{Pos: HookPosLoad, Page: 2, Frame: 0})
		Expect(recorder.Close()).To(Succeed())

		db, err := sql.Open("sqlite3", path+".sqlite3")
		Expect(err).NotTo(HaveOccurred())
		defer db.Close()

		rows, err := db.Query(
			"SELECT Event, Page, Frame FROM " + EventTable + " ORDER BY Seq")
		Expect(err).NotTo(HaveOccurred())
		defer rows.Close()

		var got []HookCtx
		for rows.Next() {
			var (
				event       string
				page, frame int
			)
			Expect(rows.Scan(&event, &page, &frame)).To(Succeed())
			got = append(got, HookCtx{
				Pos:   &HookPos{Name: event},
				Page:  page,
				Frame: frame,
			})
		}

		Expect(got).To(Equal([]HookCtx{
			{Pos: &HookPos{Name: "Miss"}, Page: 2, Frame: -1},
			{Pos: &HookPos{Name: "Load"}, Page: 2, Frame: 0},
		}))
	})

	It("should refuse a recorder that already has the table", func() {
		path := filepath.Join(GinkgoT().TempDir(), "events")
		recorder, err := datarecording.New(path)
		Expect(err).NotTo(HaveOccurred())
		defer recorder.Close()

		_, err = NewRecordingHook(recorder)
		Expect(err).NotTo(HaveOccurred())

		_, err = NewRecordingHook(recorder)
		Expect(err).To(HaveOccurred())
	})
})
