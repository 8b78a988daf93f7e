// scsp_tables.go - precomputed envelope, LFO, and rate tables built once at
// init (§3.2, §4.3.3), ported arithmetically from the original SCSP core's
// table-generation routine rather than approximated.
package main

import "math"

const (
	scspSampleRate = 44100

	scspEnvHB   = 10
	scspEnvLB   = 10
	scspEnvLen  = 1 << scspEnvHB
	scspEnvMask = scspEnvLen - 1

	scspEnvAttackStart = 0
	scspEnvDecayStart  = scspEnvLen << scspEnvLB
	scspEnvAttackEnd   = scspEnvDecayStart - 1
	scspEnvDecayEnd    = (2 * scspEnvLen << scspEnvLB) - 1

	scspLFOHB   = 10
	scspLFOLB   = 10
	scspLFOLen  = 1 << scspLFOHB
	scspLFOMask = scspLFOLen - 1

	scspAttackR = 8 * scspSampleRate
	scspDecayR  = 12 * scspAttackR
)

// envTable holds the attack curve (x^4, indices [0,envLen)) followed by the
// decay/release curve (linear, indices [envLen,2*envLen)), both expressed
// as amplitude: the attack curve rises toward envMask (full volume) and the
// decay/release curve falls linearly from envMask to 0 (silence).
var envTable [scspEnvLen * 2]int32

var (
	lfoSawtoothEnv  [scspLFOLen]int32
	lfoSquareEnv    [scspLFOLen]int32
	lfoTriangleEnv  [scspLFOLen]int32
	lfoNoiseEnv     [scspLFOLen]int32
	lfoSawtoothFreq [scspLFOLen]int32
	lfoSquareFreq   [scspLFOLen]int32
	lfoTriangleFreq [scspLFOLen]int32
	lfoNoiseFreq    [scspLFOLen]int32
)

// lfoStep[rate] converts a 5-bit LFO rate field into a fixed-point phase
// increment for the LFO's own counter.
var lfoStep [32]int32

// attackRate/decayRate map a 6-bit (rate<<1 | key-rate-scale-adjustment)
// index into an envelope-counter increment per sample.
var attackRate [0x40 + 0x20]int32
var decayRate [0x40 + 0x20]int32

func scspRound(x float64) int32 {
	if x >= 0 {
		return int32(x + 0.5)
	}
	return int32(x - 0.5)
}

func init() {
	for i := 0; i < scspEnvLen; i++ {
		x := math.Pow(float64(scspEnvMask-i)/float64(scspEnvLen), 4)
		x *= float64(scspEnvLen)
		envTable[i] = int32(scspEnvMask) - int32(x)

		x = float64(i) / float64(scspEnvLen)
		x *= float64(scspEnvLen)
		envTable[i+scspEnvLen] = int32(scspEnvMask) - int32(x)
	}

	j := 0
	for i := 0; i < 32; i++ {
		j += 1 << (i >> 2)
		freq := 172.3 / float64(j)
		lfoStep[31-i] = scspRound(freq * (float64(scspLFOLen) / float64(scspSampleRate)) * float64(int(1)<<scspLFOLB))
	}

	for i := 0; i < scspLFOLen; i++ {
		lfoSawtoothEnv[i] = int32(scspLFOMask - i)
		if i < scspLFOLen/2 {
			lfoSquareEnv[i] = int32(scspLFOMask)
		} else {
			lfoSquareEnv[i] = 0
		}
		if i < scspLFOLen/2 {
			lfoTriangleEnv[i] = int32(scspLFOMask - i*2)
		} else {
			lfoTriangleEnv[i] = int32((i - scspLFOLen/2) * 2)
		}
		lfoNoiseEnv[i] = int32(scspPRNG()) & scspLFOMask

		lfoSawtoothFreq[i] = int32(i - scspLFOLen/2)
		if i < scspLFOLen/2 {
			lfoSquareFreq[i] = int32(0 - scspLFOLen/2)
		} else {
			lfoSquareFreq[i] = int32(scspLFOMask - scspLFOLen/2)
		}
		if i < scspLFOLen/2 {
			lfoTriangleFreq[i] = int32(i*2 - scspLFOLen/2)
		} else {
			lfoTriangleFreq[i] = int32((scspLFOMask - (i-scspLFOLen/2)*2) - scspLFOLen/2)
		}
		lfoNoiseFreq[i] = lfoNoiseEnv[i] - int32(scspLFOLen/2)
	}

	for i := 0; i < 4; i++ {
		attackRate[i] = 0
		decayRate[i] = 0
	}

	for i := 0; i < 60; i++ {
		x := 1.0 + float64(i&3)*0.25
		x *= float64(int(1) << uint(i>>2))
		x *= float64(scspEnvLen << scspEnvLB)

		attackRate[i+4] = scspRound(x / float64(scspAttackR))
		decayRate[i+4] = scspRound(x / float64(scspDecayR))

		if attackRate[i+4] == 0 {
			attackRate[i+4] = 1
		}
		if decayRate[i+4] == 0 {
			decayRate[i+4] = 1
		}
	}

	attackRate[63] = scspEnvAttackEnd
	decayRate[61] = decayRate[60]
	decayRate[62] = decayRate[60]
	decayRate[63] = decayRate[60]

	for i := 64; i < 96; i++ {
		attackRate[i] = attackRate[63]
		decayRate[i] = decayRate[60]
	}
}

// scspPRNG is a small deterministic xorshift generator used only to seed
// the LFO noise tables at init; it intentionally avoids math/rand's global
// lock since table generation runs once per process and must be
// reproducible across runs for test fixtures.
var scspPRNGState uint32 = 0x2545F491

func scspPRNG() uint32 {
	scspPRNGState ^= scspPRNGState << 13
	scspPRNGState ^= scspPRNGState >> 17
	scspPRNGState ^= scspPRNGState << 5
	return scspPRNGState
}
