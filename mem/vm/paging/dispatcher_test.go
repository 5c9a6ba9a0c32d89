package paging

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/virtmem/mem/vm"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Dispatcher", func() {
	var (
		mockCtrl   *gomock.Controller
		pageTable  *MockPageTable
		store      *MockStore
		policy     *MockReplacementPolicy
		dispatcher *Dispatcher
		frameBuf   []byte
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		pageTable = NewMockPageTable(mockCtrl)
		store = NewMockStore(mockCtrl)
		policy = NewMockReplacementPolicy(mockCtrl)
		frameBuf = make([]byte, vm.PageSize)

		evictor := NewEvictor(pageTable, store)
		dispatcher = &Dispatcher{
			hookList:  evictor.hooks,
			pageTable: pageTable,
			evictor:   evictor,
			allocator: NewFrameAllocator(2, policy, evictor),
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should upgrade a read-only page on a write", func() {
		pageTable.EXPECT().Entry(3).Return(1, vm.ReadOnly)
		pageTable.EXPECT().SetEntry(3, 1, vm.ReadWrite)

		dispatcher.HandleFault(vm.Fault{Page: 3, Access: vm.Write})

		Expect(dispatcher.NumFaults()).To(Equal(uint64(0)))
		Expect(dispatcher.FreeFrames()).To(Equal(2))
	})

	It("should load a missing page into a free frame", func() {
		pageTable.EXPECT().Entry(3).Return(0, vm.Unmapped)
		pageTable.EXPECT().Frame(0).Return(frameBuf)
		store.EXPECT().Read(3, frameBuf).Return(nil)
		pageTable.EXPECT().SetEntry(3, 0, vm.ReadOnly)

		dispatcher.HandleFault(vm.Fault{Page: 3, Access: vm.Read})

		Expect(dispatcher.NumFaults()).To(Equal(uint64(1)))
		Expect(dispatcher.FreeFrames()).To(Equal(1))
	})

	It("should count a write to an unmapped page as a miss", func() {
		pageTable.EXPECT().Entry(1).Return(0, vm.Unmapped)
		pageTable.EXPECT().Frame(0).Return(frameBuf)
		store.EXPECT().Read(1, frameBuf).Return(nil)
		pageTable.EXPECT().SetEntry(1, 0, vm.ReadOnly)

		dispatcher.HandleFault(vm.Fault{Page: 1, Access: vm.Write})

		Expect(dispatcher.NumFaults()).To(Equal(uint64(1)))
	})

	It("should not reload a page that the policy installed", func() {
		dispatcher.allocator.freeFrames = 0
		pageTable.EXPECT().Entry(5).Return(0, vm.Unmapped)
		policy.EXPECT().Reclaim(5).Return(0, true)

		dispatcher.HandleFault(vm.Fault{Page: 5, Access: vm.Read})

		Expect(dispatcher.NumFaults()).To(Equal(uint64(1)))
	})

	It("should evict the victim before loading", func() {
		dispatcher.allocator.freeFrames = 0
		victimBuf := make([]byte, vm.PageSize)

		pageTable.EXPECT().Entry(5).Return(0, vm.Unmapped)
		policy.EXPECT().Reclaim(5).Return(1, false)
		pageTable.EXPECT().NumPages().Return(6).AnyTimes()
		pageTable.EXPECT().Entry(0).Return(0, vm.ReadOnly).AnyTimes()
		pageTable.EXPECT().Entry(1).Return(1, vm.ReadWrite).AnyTimes()
		gomock.InOrder(
			pageTable.EXPECT().Frame(1).Return(victimBuf),
			store.EXPECT().Write(1, victimBuf).Return(nil),
			pageTable.EXPECT().SetEntry(1, 0, vm.Unmapped),
			pageTable.EXPECT().Frame(1).Return(victimBuf),
			store.EXPECT().Read(5, victimBuf).Return(nil),
			pageTable.EXPECT().SetEntry(5, 1, vm.ReadOnly),
		)

		dispatcher.HandleFault(vm.Fault{Page: 5, Access: vm.Read})
	})

	It("should panic on a fault of a read-write page", func() {
		pageTable.EXPECT().Entry(2).Return(1, vm.ReadWrite)

		Expect(func() {
			dispatcher.HandleFault(vm.Fault{Page: 2, Access: vm.Write})
		}).To(Panic())
	})

	It("should panic on a read fault of a read-only page", func() {
		pageTable.EXPECT().Entry(2).Return(1, vm.ReadOnly)

		Expect(func() {
			dispatcher.HandleFault(vm.Fault{Page: 2, Access: vm.Read})
		}).To(Panic())
	})

	It("should panic if the page cannot be read from the store", func() {
		pageTable.EXPECT().Entry(3).Return(0, vm.Unmapped)
		pageTable.EXPECT().Frame(0).Return(frameBuf)
		store.EXPECT().Read(3, frameBuf).Return(errors.New("bad sector"))

		Expect(func() {
			dispatcher.HandleFault(vm.Fault{Page: 3, Access: vm.Read})
		}).To(Panic())
	})

	It("should invoke hooks on a miss", func() {
		var positions []*HookPos
		dispatcher.AcceptHook(HookFunc(func(ctx HookCtx) {
			positions = append(positions, ctx.Pos)
		}))

		pageTable.EXPECT().Entry(3).Return(0, vm.Unmapped)
		pageTable.EXPECT().Frame(0).Return(frameBuf)
		store.EXPECT().Read(3, frameBuf).Return(nil)
		pageTable.EXPECT().SetEntry(3, 0, vm.ReadOnly)

		dispatcher.HandleFault(vm.Fault{Page: 3, Access: vm.Read})

		Expect(positions).To(Equal([]*HookPos{HookPosMiss, HookPosLoad}))
	})
})
