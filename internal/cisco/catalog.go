package cisco

// role holds the ordered body statements emitted between the
// default-interface header and the optional bounce trailer.
// Statement order is an external contract: generated blocks are pasted
// into a live config terminal, and later statements rely on the mode
// selected by earlier ones. Never reorder.
type role struct {
	statements []string
	// bounce appends "shutdown / no shutdown / exit" after the body.
	// Always-on roles (door systems, NVR, management) are left open
	// intentionally; this is per-role, not a derivable rule.
	bounce bool
}

var catalog = map[string]role{
	"data_voice": {
		statements: []string{
			"description // Data and Voice //",
			"switchport mode access",
			"switchport access vlan 6",
			"switchport voice vlan 4",
			"auto qos voip cisco-phone",
			"switchport port-security",
			"switchport port-security maximum 3",
			"switchport port-security violation restrict",
			"switchport port-security aging time 1",
			"switchport port-security aging type inactivity",
			"switchport nonegotiate",
			"ip dhcp snooping limit rate 15",
			"ip arp inspection limit rate 15",
			"spanning-tree portfast",
			"spanning-tree bpduguard enable",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"camera": {
		statements: []string{
			"description // Camera //",
			"switchport mode access",
			"switchport access vlan 5",
			"spanning-tree portfast",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"trunk_wap": {
		statements: []string{
			"description // TrunkportforWAP //",
			"switchport mode trunk",
			"switchport trunk native vlan 25",
			"switchport trunk allowed vlan 25,4,8,16,20,30,32",
			"switchport nonegotiate",
			"ip dhcp snooping trust",
			"ip arp inspection trust",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"vape_sensor": {
		statements: []string{
			"description // Vape_Sensor //",
			"switchport mode access",
			"switchport access vlan 30",
			"spanning-tree portfast",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"trunk_switch": {
		statements: []string{
			"description // TrunkportforSwitch //",
			"switchport mode trunk",
			"switchport nonegotiate",
			"ip dhcp snooping trust",
			"ip arp inspection trust",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"door_system": {
		statements: []string{
			"description // DoorSystem //",
			"switchport mode access",
			"switchport access vlan 30",
			"spanning-tree portfast",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
	},
	"algo_bell": {
		// NB: vlan before mode, and IPv4_NETFLOW on input — copied from the
		// deployed paging config, keep as-is.
		statements: []string{
			"description // Algo 8301 IP Paging //",
			"switchport access vlan 6",
			"switchport mode access",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor IPv4_NETFLOW input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
			"spanning-tree portfast",
		},
	},
	"voip_server": {
		statements: []string{
			"description // VoIP_Server //",
			"switchport mode trunk",
			"switchport trunk allowed vlan 250,4",
			"spanning-tree portfast",
			"ip dhcp snooping trust",
			"ip arp inspection trust",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"camera_server": {
		statements: []string{
			"description // NVR Server //",
			"switchport access vlan 5",
			"switchport mode access",
			"ip dhcp snooping trust",
			"ip arp inspection trust",
			"spanning-tree portfast",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
	},
	"student_vlan8": {
		statements: []string{
			"description // Student_VLAN //",
			"switchport mode access",
			"switchport access vlan 8",
			"switchport voice vlan 4",
			"auto qos voip cisco-phone",
			"switchport port-security",
			"switchport port-security maximum 3",
			"switchport port-security violation restrict",
			"switchport port-security aging time 1",
			"switchport port-security aging type inactivity",
			"switchport nonegotiate",
			"ip dhcp snooping limit rate 15",
			"ip arp inspection limit rate 15",
			"spanning-tree portfast",
			"spanning-tree bpduguard enable",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"printer": {
		statements: []string{
			"description // Printer //",
			"switchport mode access",
			"switchport access vlan 6",
			"ip dhcp snooping trust",
			"ip arp inspection trust",
			"switchport voice vlan 4",
			"auto qos voip cisco-phone",
			"spanning-tree portfast",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"management": {
		statements: []string{
			"description // Management //",
			"switchport mode access",
			"switchport access vlan 2",
			"ip dhcp snooping trust",
			"ip arp inspection trust",
			"spanning-tree portfast",
			"spanning-tree bpduguard enable",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
	},
	"pos_machine": {
		statements: []string{
			"description // POS_Machine //",
			"switchport mode access",
			"switchport access vlan 150",
			"switchport voice vlan 4",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
	"hyperv": {
		statements: []string{
			"description // Hyper-V //",
			"switchport mode trunk",
			"no switchport trunk allowed vlan",
			"ip dhcp snooping trust",
			"ip arp inspection trust",
			"device-tracking attach-policy MERAKI_POLICY",
			"ip flow monitor MERAKI_AVC_IPV4 input",
			"ip flow monitor MERAKI_AVC_IPV4 output",
			"ipv6 flow monitor MERAKI_AVC_IPV6 input",
			"ipv6 flow monitor MERAKI_AVC_IPV6 output",
		},
		bounce: true,
	},
}
