package bba

// CoinMessage is an opaque common-coin sub-message. BBA relays it without
// ever inspecting its contents.
type CoinMessage interface{}

// CoinStep is the batch a single CommonCoin call produces: outbound coin
// messages plus, at most, one boolean output.
type CoinStep struct {
	Messages []TargetedCoinMessage
	Output   *bool
}

// TargetedCoinMessage pairs an outbound coin sub-message with its target.
type TargetedCoinMessage struct {
	Target Target
	Msg    CoinMessage
}

// CommonCoin is the distributed-boolean collaborator BBA's Random coin
// schedule drives. Two correct nodes constructed with equal
// nonces must observe the same output; once N-f correct nodes have called
// Input, an output must be produced. BBA treats it as a black box: it is
// replaced wholesale every epoch transition.
type CommonCoin interface {
	// Input kicks off this instance's coin flip. Called at most once.
	Input() (CoinStep, error)
	// HandleMessage processes a sub-message from sender.
	HandleMessage(sender NodeID, msg CoinMessage) (CoinStep, error)
}

// CoinFactory constructs a fresh CommonCoin instance bound to nonce, the way
// the original's CommonCoin::new(netinfo, nonce) does. Agreement calls this
// lazily, at most once per epoch and only in epochs on the Random schedule;
// see epoch.go.
type CoinFactory func(netinfo NetworkInfo, nonce Nonce) CommonCoin
