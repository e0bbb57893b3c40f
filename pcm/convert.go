package pcm

// Convert returns a clip resampled to rate and remixed to the given channel
// count, so it matches an opened device spec. The receiver is returned
// unchanged when it already matches. Channel remixing averages down to mono
// and duplicates up to stereo; resampling is linear.
func (c *Clip) Convert(rate, channels int) *Clip {
	if c.Rate == rate && c.Channels == channels {
		return c
	}

	samples := c.samples()
	if c.Channels != channels {
		samples = remix(samples, c.Channels, channels)
	}
	if c.Rate != rate {
		samples = resample(samples, channels, c.Rate, rate)
	}
	return &Clip{Data: fromSamples(samples), Rate: rate, Channels: channels}
}

// remix converts interleaved samples between channel layouts. Downmixing
// averages the source channels; upmixing repeats the last source channel.
func remix(in []int16, from, to int) []int16 {
	if from == to || from <= 0 || to <= 0 {
		return in
	}
	frames := len(in) / from
	out := make([]int16, frames*to)
	for f := 0; f < frames; f++ {
		src := in[f*from : (f+1)*from]
		dst := out[f*to : (f+1)*to]
		if to < from {
			// average groups of source channels into each target
			per := from / to
			for t := 0; t < to; t++ {
				var sum int
				for s := t * per; s < (t+1)*per; s++ {
					sum += int(src[s])
				}
				dst[t] = int16(sum / per)
			}
		} else {
			for t := 0; t < to; t++ {
				s := t
				if s >= from {
					s = from - 1
				}
				dst[t] = src[s]
			}
		}
	}
	return out
}

// resample converts interleaved samples between rates using linear
// interpolation per channel.
func resample(in []int16, channels, from, to int) []int16 {
	if from == to || from <= 0 || to <= 0 || channels <= 0 {
		return in
	}
	frames := len(in) / channels
	if frames == 0 {
		return nil
	}
	outFrames := int(int64(frames) * int64(to) / int64(from))
	if outFrames == 0 {
		outFrames = 1
	}
	out := make([]int16, outFrames*channels)
	step := float64(from) / float64(to)
	for f := 0; f < outFrames; f++ {
		pos := float64(f) * step
		i := int(pos)
		frac := pos - float64(i)
		j := i + 1
		if j >= frames {
			j = frames - 1
		}
		for ch := 0; ch < channels; ch++ {
			a := float64(in[i*channels+ch])
			b := float64(in[j*channels+ch])
			out[f*channels+ch] = int16(a + (b-a)*frac)
		}
	}
	return out
}
