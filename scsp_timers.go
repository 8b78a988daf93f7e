// scsp_timers.go - timers A/B/C and the one-sample heartbeat (§4.3.6).
package main

// UpdateTimers integrates a float accumulator of rendered samples into an
// integer sample count and advances all three timers by it, matching the
// original's "old_samples += new_samples, integerize" approach so
// fractional sample-rate conversions don't lose samples over time.
func (s *SCSP) UpdateTimers(newSamples int) {
	s.sampleAccumulator += float64(newSamples)
	n := int(s.sampleAccumulator)
	s.sampleAccumulator -= float64(n)
	if n <= 0 {
		return
	}

	s.advanceTimer(&s.TimerA, n, scspIntBitTimerA, scspIntTimerAMain, scspIntTimerASound)
	s.advanceTimer(&s.TimerB, n, scspIntBitTimerB, scspIntTimerBMain, scspIntTimerBSound)
	s.advanceTimer(&s.TimerC, n, scspIntBitTimerC, scspIntTimerCMain, scspIntTimerCSound)

	s.raiseMain(scspIntBitSample, scspIntSampleMain)
	s.raiseSound(scspIntBitSample, scspIntSampleSound)
}

func (s *SCSP) advanceTimer(t *SCSPTimer, n int, bit int, mainIdx, soundIdx int) {
	step := n >> t.Prescale
	if step == 0 {
		return
	}
	count := int(t.Count) + step
	if count > int(t.Limit) {
		count &= 0xFF
		s.raiseMain(bit, mainIdx)
		s.raiseSound(bit, soundIdx)
	}
	t.Count = uint16(count & 0xFFFF)
}
