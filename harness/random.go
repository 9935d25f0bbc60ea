package harness

import (
	"math/rand/v2"
	"time"
)

// 进程级随机源，程序启动时由 InitRandom 播种一次，之后不再重新播种。
var (
	random     *rand.Rand
	randomSeed uint64
)

// InitRandom 用 seed 初始化进程级随机源并返回实际使用的种子，seed 为 0 时使用当前时间。
// 重复调用会 panic。
func InitRandom(seed uint64) uint64 {
	if random != nil {
		panic("harness: random source already seeded")
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	random = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	randomSeed = seed
	return seed
}

// Random 返回进程级随机源，必须在 InitRandom 之后调用。
func Random() *rand.Rand {
	if random == nil {
		panic("harness: random source used before InitRandom")
	}
	return random
}

// Seeded 报告进程级随机源是否已经播种。
func Seeded() bool {
	return random != nil
}

// RandomSeed 返回进程级随机源的种子。
func RandomSeed() uint64 {
	return randomSeed
}
