// Package cloud models the fixed lab network (one VPC, four subnets, a gateway,
// two route tables, two security groups, three instances) and the control-plane
// contract the orchestrators drive it through.
package cloud
