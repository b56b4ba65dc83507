package rate

import "time"

// fakeTimer advances only when slept on or stepped explicitly.
type fakeTimer struct {
	now   time.Time
	slept []time.Duration
}

func newFakeTimer() *fakeTimer {
	return &fakeTimer{now: time.Unix(1000, 0)}
}

func (f *fakeTimer) Now() time.Time {
	return f.now
}

func (f *fakeTimer) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
}

func (f *fakeTimer) advance(d time.Duration) {
	f.now = f.now.Add(d)
}
