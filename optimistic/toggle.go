// Package optimistic implements the optimistic-update pattern for the like
// toggle: flip the local state immediately, issue the remote mutation, then
// reconcile to the server count or roll back.
package optimistic

import (
	"context"
	"sync"
)

// Remote issues the like mutations. Both calls return the authoritative like
// count reported by the backend after the mutation.
type Remote interface {
	AddLike(ctx context.Context, postId string) (int64, error)
	RemoveLike(ctx context.Context, postId string) (int64, error)
}

// LikeState is the viewer-visible state of a post's like toggle.
type LikeState struct {
	Liked bool
	Count int64
}

// ToggleResult is delivered once the toggle settles.
type ToggleResult struct {
	// Applied is false when the toggle was ignored because another toggle
	// was still in flight for this post and viewer.
	Applied bool
	// State is the settled state: server-reconciled on success, the exact
	// pre-toggle snapshot on failure.
	State LikeState
	Err   error
}

// LikeToggle guards one (post, viewer) pair. While a remote mutation is in
// flight further Toggle calls are no-ops, so a rapid double-click produces
// one net state change.
type LikeToggle struct {
	postId string
	remote Remote

	mu       sync.Mutex
	state    LikeState
	inFlight bool
}

func NewLikeToggle(postId string, initial LikeState, remote Remote) *LikeToggle {
	return &LikeToggle{
		postId: postId,
		remote: remote,
		state:  initial,
	}
}

// State returns the current view state, including the provisional optimistic
// value while a mutation is in flight.
func (t *LikeToggle) State() LikeState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Toggle flips the liked state optimistically and settles it against the
// remote outcome. The returned channel delivers exactly one result.
func (t *LikeToggle) Toggle(ctx context.Context) chan ToggleResult {
	result := make(chan ToggleResult, 1)

	t.mu.Lock()
	if t.inFlight {
		state := t.state
		t.mu.Unlock()
		result <- ToggleResult{Applied: false, State: state}
		return result
	}

	before := t.state
	if t.state.Liked {
		t.state = LikeState{Liked: false, Count: t.state.Count - 1}
	} else {
		t.state = LikeState{Liked: true, Count: t.state.Count + 1}
	}
	liking := t.state.Liked
	t.inFlight = true
	t.mu.Unlock()

	go func() {
		var serverCount int64
		var err error
		if liking {
			serverCount, err = t.remote.AddLike(ctx, t.postId)
		} else {
			serverCount, err = t.remote.RemoveLike(ctx, t.postId)
		}

		t.mu.Lock()
		if err != nil {
			// No round-trip succeeded, so the pre-toggle snapshot is
			// the only trustworthy state.
			t.state = before
		} else {
			t.state.Count = serverCount
		}
		settled := t.state
		t.inFlight = false
		t.mu.Unlock()

		result <- ToggleResult{Applied: true, State: settled, Err: err}
	}()

	return result
}
