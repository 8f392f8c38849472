package cloud

import "fmt"

type SubnetRole string

const (
	SubnetPublicAZ1  SubnetRole = "public_az1"
	SubnetPrivateAZ1 SubnetRole = "private_az1"
	SubnetPublicAZ2  SubnetRole = "public_az2"
	SubnetPrivateAZ2 SubnetRole = "private_az2"
)

type RouteTableRole string

const (
	RouteTablePublic  RouteTableRole = "public"
	RouteTablePrivate RouteTableRole = "private"
)

type SecurityGroupRole string

const (
	SecurityGroupApp SecurityGroupRole = "app"
	SecurityGroupDB  SecurityGroupRole = "db"
)

type InstanceRole string

const (
	InstanceAppAZ2 InstanceRole = "app_az2"
	InstanceDBAZ1  InstanceRole = "db_az1"
	InstanceDBAZ2  InstanceRole = "db_az2"
)

// DefaultRouteDestination is the catch-all destination routed to the internet gateway.
const DefaultRouteDestination = "0.0.0.0/0"

type SubnetSpec struct {
	Role     SubnetRole
	Name     string
	CIDR     string
	AZSuffix string
	Public   bool
}

type RouteTableSpec struct {
	Role         RouteTableRole
	Name         string
	DefaultRoute bool
	Subnets      []SubnetRole
}

// PortRule is an ingress rule before group references are resolved to ids.
// Exactly one of CIDR and FromGroup is set.
type PortRule struct {
	FromPort    int32
	ToPort      int32
	Description string
	CIDR        string
	FromGroup   SecurityGroupRole
}

type SecurityGroupSpec struct {
	Role        SecurityGroupRole
	Name        string
	Description string
	TypeTag     string
	Rules       []PortRule
}

type InstanceSpec struct {
	Role            InstanceRole
	Name            string
	TypeTag         string
	Subnet          SubnetRole
	SecurityGroup   SecurityGroupRole
	Image           string
	InstanceType    string
	KeyName         string
	InstanceProfile string
	RootDevice      string
	RootVolumeGiB   int32
	UserData        string
}

// Topology is the fixed network layout, listed in creation order.
type Topology struct {
	Subnets             []SubnetSpec
	InternetGatewayName string
	RouteTables         []RouteTableSpec
	SecurityGroups      []SecurityGroupSpec
	Instances           []InstanceSpec
}

type TopologyOptions struct {
	NamePrefix      string
	InstancePrefix  string
	AppImage        string
	DBImage         string
	InstanceType    string
	KeyName         string
	InstanceProfile string
}

func DefaultTopologyOptions() TopologyOptions {
	return TopologyOptions{
		NamePrefix:      "polystudentlab",
		InstancePrefix:  "polystudent",
		AppImage:        "ami-0ecb62995f68bb549",
		DBImage:         "ami-0b4bc1e90f30ca1ec",
		InstanceType:    "t2.micro",
		KeyName:         "polystudent-keypair",
		InstanceProfile: "LabInstanceProfile",
	}
}

// User-data payload names resolved through the user-data provider.
const (
	AppServerUserData = "app-server.tpl"
	DBServerUserData  = "db-server.tpl"
)

func DefaultTopology(o TopologyOptions) Topology {
	name := func(s string) string { return o.NamePrefix + "-" + s }

	var appRules []PortRule
	for _, r := range []struct {
		from, to int32
		desc     string
	}{
		{22, 22, "SSH"},
		{80, 80, "HTTP"},
		{443, 443, "HTTPS"},
		{1514, 1514, "OSSEC"},
		{9200, 9300, "Elasticsearch"},
	} {
		appRules = append(appRules, PortRule{FromPort: r.from, ToPort: r.to, Description: r.desc, CIDR: "0.0.0.0/0"})
	}

	var dbRules []PortRule
	for _, r := range []struct {
		port int32
		desc string
	}{
		{3306, "MySQL from App servers"},
		{1433, "MSSQL from App servers"},
		{5432, "PostgreSQL from App servers"},
		{3389, "RDP from App servers"},
		{1514, "OSSEC from App servers"},
	} {
		dbRules = append(dbRules, PortRule{FromPort: r.port, ToPort: r.port, Description: r.desc, FromGroup: SecurityGroupApp})
	}

	instance := func(role InstanceRole, suffix, typeTag string, subnet SubnetRole, sg SecurityGroupRole, image string, gib int32, userData string) InstanceSpec {
		return InstanceSpec{
			Role:            role,
			Name:            o.InstancePrefix + "-" + suffix,
			TypeTag:         typeTag,
			Subnet:          subnet,
			SecurityGroup:   sg,
			Image:           image,
			InstanceType:    o.InstanceType,
			KeyName:         o.KeyName,
			InstanceProfile: o.InstanceProfile,
			RootDevice:      "/dev/sda1",
			RootVolumeGiB:   gib,
			UserData:        userData,
		}
	}

	return Topology{
		Subnets: []SubnetSpec{
			{Role: SubnetPublicAZ1, Name: name("public-az1"), CIDR: "10.0.0.0/24", AZSuffix: "a", Public: true},
			{Role: SubnetPrivateAZ1, Name: name("private-az1"), CIDR: "10.0.128.0/24", AZSuffix: "a"},
			{Role: SubnetPublicAZ2, Name: name("public-az2"), CIDR: "10.0.16.0/24", AZSuffix: "b", Public: true},
			{Role: SubnetPrivateAZ2, Name: name("private-az2"), CIDR: "10.0.144.0/24", AZSuffix: "b"},
		},
		InternetGatewayName: name("igw"),
		RouteTables: []RouteTableSpec{
			{Role: RouteTablePublic, Name: name("public-rt"), DefaultRoute: true, Subnets: []SubnetRole{SubnetPublicAZ1, SubnetPublicAZ2}},
			{Role: RouteTablePrivate, Name: name("private-rt"), Subnets: []SubnetRole{SubnetPrivateAZ1, SubnetPrivateAZ2}},
		},
		SecurityGroups: []SecurityGroupSpec{
			{
				Role:        SecurityGroupApp,
				Name:        name("app-sg"),
				Description: "Security group for App servers - allows SSH, HTTP, HTTPS, OSSEC, and Elasticsearch",
				TypeTag:     "App-Server",
				Rules:       appRules,
			},
			{
				Role:        SecurityGroupDB,
				Name:        name("db-sg"),
				Description: "Security group for DB servers - only accessible from App servers",
				TypeTag:     "DB-Server",
				Rules:       dbRules,
			},
		},
		Instances: []InstanceSpec{
			instance(InstanceAppAZ2, "app-az2", "App-Server", SubnetPublicAZ2, SecurityGroupApp, o.AppImage, 80, AppServerUserData),
			instance(InstanceDBAZ1, "db-az1", "DB-Server", SubnetPrivateAZ1, SecurityGroupDB, o.DBImage, 30, DBServerUserData),
			instance(InstanceDBAZ2, "db-az2", "DB-Server", SubnetPrivateAZ2, SecurityGroupDB, o.DBImage, 30, DBServerUserData),
		},
	}
}

// Validate checks the invariants a topology must hold before any create call:
// disjoint subnet CIDRs, resolvable references, and group rules that only point
// at groups created earlier (so the reference graph stays one-directional).
func (t Topology) Validate() error {
	subnets := make(map[SubnetRole]bool, len(t.Subnets))
	var cidrs []string
	for _, s := range t.Subnets {
		if subnets[s.Role] {
			return fmt.Errorf("duplicate subnet role %q", s.Role)
		}
		subnets[s.Role] = true
		cidrs = append(cidrs, s.CIDR)
	}
	if err := CheckDisjoint(cidrs); err != nil {
		return err
	}

	for _, rt := range t.RouteTables {
		for _, r := range rt.Subnets {
			if !subnets[r] {
				return fmt.Errorf("route table %s: unknown subnet %q", rt.Name, r)
			}
		}
	}

	created := make(map[SecurityGroupRole]bool, len(t.SecurityGroups))
	for _, sg := range t.SecurityGroups {
		for _, rule := range sg.Rules {
			if (rule.CIDR == "") == (rule.FromGroup == "") {
				return fmt.Errorf("security group %s: rule %q needs exactly one of CIDR and source group", sg.Name, rule.Description)
			}
			if rule.FromGroup != "" && !created[rule.FromGroup] {
				return fmt.Errorf("security group %s: rule %q references %q which is not created before it", sg.Name, rule.Description, rule.FromGroup)
			}
			if rule.FromPort > rule.ToPort {
				return fmt.Errorf("security group %s: rule %q has inverted port range", sg.Name, rule.Description)
			}
		}
		created[sg.Role] = true
	}

	for _, inst := range t.Instances {
		if !subnets[inst.Subnet] {
			return fmt.Errorf("instance %s: unknown subnet %q", inst.Name, inst.Subnet)
		}
		if !created[inst.SecurityGroup] {
			return fmt.Errorf("instance %s: unknown security group %q", inst.Name, inst.SecurityGroup)
		}
	}
	return nil
}

// SubnetCIDRs returns the subnet blocks in creation order.
func (t Topology) SubnetCIDRs() []string {
	out := make([]string, 0, len(t.Subnets))
	for _, s := range t.Subnets {
		out = append(out, s.CIDR)
	}
	return out
}
