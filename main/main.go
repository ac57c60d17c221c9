package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	consteither "github.com/GabrielDertoni/const-either"
)

func main() {
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	var sink uint64
	for i := 0; i < 100000; i++ {
		some := consteither.NewSome(uint64(i))
		sink += some.IntoInner()
		left := consteither.NewLeft[uint64, string](uint64(i))
		sink += left.Flip().IntoInner()
		right := consteither.NewRight[consteither.Never, uint64](uint64(i))
		*right.Ref() *= 2
		sink += right.Get()
	}
	log.Printf("checksum: %d", sink)
	pprof.WriteHeapProfile(f)
}
