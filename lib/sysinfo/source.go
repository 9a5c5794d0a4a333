package sysinfo

// CommandSource answers live interface queries by running external
// commands, one per attribute. The defaults read sysfs; every template
// gets the interface name through the {{ifname}} placeholder.
type CommandSource struct {
	OperStatusCmd  string
	PhysAddressCmd string
	SpeedCmd       string
	TxBytesCmd     string
	TxErrorsCmd    string
	RxBytesCmd     string
	RxErrorsCmd    string
	MTUCmd         string
}

func NewCommandSource() *CommandSource {
	return &CommandSource{
		OperStatusCmd:  "cat /sys/class/net/{{ifname}}/operstate",
		PhysAddressCmd: "cat /sys/class/net/{{ifname}}/address",
		SpeedCmd:       "cat /sys/class/net/{{ifname}}/speed",
		TxBytesCmd:     "cat /sys/class/net/{{ifname}}/statistics/tx_bytes",
		TxErrorsCmd:    "cat /sys/class/net/{{ifname}}/statistics/tx_errors",
		RxBytesCmd:     "cat /sys/class/net/{{ifname}}/statistics/rx_bytes",
		RxErrorsCmd:    "cat /sys/class/net/{{ifname}}/statistics/rx_errors",
		MTUCmd:         "cat /sys/class/net/{{ifname}}/mtu",
	}
}

func (s *CommandSource) OperStatus(ifname string) (string, error) {
	return StringFromCmd(s.OperStatusCmd, ifname)
}

func (s *CommandSource) PhysAddress(ifname string) (string, error) {
	return StringFromCmd(s.PhysAddressCmd, ifname)
}

func (s *CommandSource) Speed(ifname string) (uint64, error) {
	return Uint64FromCmd(s.SpeedCmd, ifname)
}

func (s *CommandSource) OutOctets(ifname string) (uint64, error) {
	return Uint64FromCmd(s.TxBytesCmd, ifname)
}

func (s *CommandSource) OutErrors(ifname string) (uint64, error) {
	return Uint64FromCmd(s.TxErrorsCmd, ifname)
}

func (s *CommandSource) InOctets(ifname string) (uint64, error) {
	return Uint64FromCmd(s.RxBytesCmd, ifname)
}

func (s *CommandSource) InErrors(ifname string) (uint64, error) {
	return Uint64FromCmd(s.RxErrorsCmd, ifname)
}

func (s *CommandSource) MTU(ifname string) (uint16, error) {
	value, err := Uint64FromCmd(s.MTUCmd, ifname)
	if err != nil {
		return 0, err
	}
	return uint16(value), nil
}
