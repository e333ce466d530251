package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsheet.v1alpha1.SheetService"

// Full method names
const (
	SheetService_CreateCharacter_FullMethodName     = "/" + ServiceName + "/CreateCharacter"
	SheetService_GetCharacter_FullMethodName        = "/" + ServiceName + "/GetCharacter"
	SheetService_ListCharacters_FullMethodName      = "/" + ServiceName + "/ListCharacters"
	SheetService_DeleteCharacter_FullMethodName     = "/" + ServiceName + "/DeleteCharacter"
	SheetService_GetSummary_FullMethodName          = "/" + ServiceName + "/GetSummary"
	SheetService_IncreaseAbility_FullMethodName     = "/" + ServiceName + "/IncreaseAbility"
	SheetService_DecreaseAbility_FullMethodName     = "/" + ServiceName + "/DecreaseAbility"
	SheetService_SetSkillProficiency_FullMethodName = "/" + ServiceName + "/SetSkillProficiency"
	SheetService_IncreaseSkill_FullMethodName       = "/" + ServiceName + "/IncreaseSkill"
	SheetService_DecreaseSkill_FullMethodName       = "/" + ServiceName + "/DecreaseSkill"
	SheetService_IncreaseDefense_FullMethodName     = "/" + ServiceName + "/IncreaseDefense"
	SheetService_DecreaseDefense_FullMethodName     = "/" + ServiceName + "/DecreaseDefense"
	SheetService_SetMilestoneChoice_FullMethodName  = "/" + ServiceName + "/SetMilestoneChoice"
	SheetService_SetProficiency_FullMethodName      = "/" + ServiceName + "/SetProficiency"
	SheetService_SetLevel_FullMethodName            = "/" + ServiceName + "/SetLevel"
	SheetService_RollPool_FullMethodName            = "/" + ServiceName + "/RollPool"
	SheetService_RollCheck_FullMethodName           = "/" + ServiceName + "/RollCheck"
	SheetService_RollDamage_FullMethodName          = "/" + ServiceName + "/RollDamage"
	SheetService_GetRollLog_FullMethodName          = "/" + ServiceName + "/GetRollLog"
	SheetService_ClearRollLog_FullMethodName        = "/" + ServiceName + "/ClearRollLog"
)

// SheetServiceServer is the server API for the sheet service
type SheetServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CharacterResponse, error)
	GetCharacter(context.Context, *CharacterRequest) (*CharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *CharacterRequest) (*DeleteCharacterResponse, error)
	GetSummary(context.Context, *CharacterRequest) (*GetSummaryResponse, error)
	IncreaseAbility(context.Context, *AbilityRequest) (*ChangeResponse, error)
	DecreaseAbility(context.Context, *AbilityRequest) (*ChangeResponse, error)
	SetSkillProficiency(context.Context, *SetSkillProficiencyRequest) (*ChangeResponse, error)
	IncreaseSkill(context.Context, *SkillRequest) (*ChangeResponse, error)
	DecreaseSkill(context.Context, *SkillRequest) (*ChangeResponse, error)
	IncreaseDefense(context.Context, *AbilityRequest) (*ChangeResponse, error)
	DecreaseDefense(context.Context, *AbilityRequest) (*ChangeResponse, error)
	SetMilestoneChoice(context.Context, *SetMilestoneChoiceRequest) (*ChangeResponse, error)
	SetProficiency(context.Context, *SetProficiencyRequest) (*ChangeResponse, error)
	SetLevel(context.Context, *SetLevelRequest) (*ChangeResponse, error)
	RollPool(context.Context, *RollPoolRequest) (*RollResponse, error)
	RollCheck(context.Context, *RollCheckRequest) (*RollResponse, error)
	RollDamage(context.Context, *RollDamageRequest) (*RollResponse, error)
	GetRollLog(context.Context, *RollLogRequest) (*GetRollLogResponse, error)
	ClearRollLog(context.Context, *RollLogRequest) (*ClearRollLogResponse, error)
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetService_ServiceDesc, srv)
}

// SheetServiceClient is the client API for the sheet service. Every call
// uses the JSON codec.
type SheetServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	GetCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	GetSummary(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*GetSummaryResponse, error)
	IncreaseAbility(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	DecreaseAbility(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	SetSkillProficiency(ctx context.Context, in *SetSkillProficiencyRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	IncreaseSkill(ctx context.Context, in *SkillRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	DecreaseSkill(ctx context.Context, in *SkillRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	IncreaseDefense(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	DecreaseDefense(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	SetMilestoneChoice(ctx context.Context, in *SetMilestoneChoiceRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	SetProficiency(ctx context.Context, in *SetProficiencyRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	SetLevel(ctx context.Context, in *SetLevelRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
	RollPool(ctx context.Context, in *RollPoolRequest, opts ...grpc.CallOption) (*RollResponse, error)
	RollCheck(ctx context.Context, in *RollCheckRequest, opts ...grpc.CallOption) (*RollResponse, error)
	RollDamage(ctx context.Context, in *RollDamageRequest, opts ...grpc.CallOption) (*RollResponse, error)
	GetRollLog(ctx context.Context, in *RollLogRequest, opts ...grpc.CallOption) (*GetRollLogResponse, error)
	ClearRollLog(ctx context.Context, in *RollLogRequest, opts ...grpc.CallOption) (*ClearRollLogResponse, error)
}

type sheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client over cc
func NewSheetServiceClient(cc grpc.ClientConnInterface) SheetServiceClient {
	return &sheetServiceClient{cc: cc}
}

func (c *sheetServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *sheetServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, SheetService_CreateCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) GetCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, SheetService_GetCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	out := new(ListCharactersResponse)
	if err := c.invoke(ctx, SheetService_ListCharacters_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) DeleteCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	out := new(DeleteCharacterResponse)
	if err := c.invoke(ctx, SheetService_DeleteCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) GetSummary(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*GetSummaryResponse, error) {
	out := new(GetSummaryResponse)
	if err := c.invoke(ctx, SheetService_GetSummary_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) IncreaseAbility(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_IncreaseAbility_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) DecreaseAbility(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_DecreaseAbility_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetSkillProficiency(ctx context.Context, in *SetSkillProficiencyRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_SetSkillProficiency_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) IncreaseSkill(ctx context.Context, in *SkillRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_IncreaseSkill_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) DecreaseSkill(ctx context.Context, in *SkillRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_DecreaseSkill_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) IncreaseDefense(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_IncreaseDefense_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) DecreaseDefense(ctx context.Context, in *AbilityRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_DecreaseDefense_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetMilestoneChoice(ctx context.Context, in *SetMilestoneChoiceRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_SetMilestoneChoice_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetProficiency(ctx context.Context, in *SetProficiencyRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_SetProficiency_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetLevel(ctx context.Context, in *SetLevelRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, SheetService_SetLevel_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RollPool(ctx context.Context, in *RollPoolRequest, opts ...grpc.CallOption) (*RollResponse, error) {
	out := new(RollResponse)
	if err := c.invoke(ctx, SheetService_RollPool_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RollCheck(ctx context.Context, in *RollCheckRequest, opts ...grpc.CallOption) (*RollResponse, error) {
	out := new(RollResponse)
	if err := c.invoke(ctx, SheetService_RollCheck_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RollDamage(ctx context.Context, in *RollDamageRequest, opts ...grpc.CallOption) (*RollResponse, error) {
	out := new(RollResponse)
	if err := c.invoke(ctx, SheetService_RollDamage_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) GetRollLog(ctx context.Context, in *RollLogRequest, opts ...grpc.CallOption) (*GetRollLogResponse, error) {
	out := new(GetRollLogResponse)
	if err := c.invoke(ctx, SheetService_GetRollLog_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ClearRollLog(ctx context.Context, in *RollLogRequest, opts ...grpc.CallOption) (*ClearRollLogResponse, error) {
	out := new(ClearRollLogResponse)
	if err := c.invoke(ctx, SheetService_ClearRollLog_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func _SheetService_CreateCharacter_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(CreateCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).CreateCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_CreateCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).CreateCharacter(ctx, req.(*CreateCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_GetCharacter_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(CharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_GetCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).GetCharacter(ctx, req.(*CharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListCharacters_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListCharacters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_DeleteCharacter_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(CharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).DeleteCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_DeleteCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).DeleteCharacter(ctx, req.(*CharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_GetSummary_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(CharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).GetSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_GetSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).GetSummary(ctx, req.(*CharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_IncreaseAbility_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(AbilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).IncreaseAbility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_IncreaseAbility_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).IncreaseAbility(ctx, req.(*AbilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_DecreaseAbility_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(AbilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).DecreaseAbility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_DecreaseAbility_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).DecreaseAbility(ctx, req.(*AbilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetSkillProficiency_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SetSkillProficiencyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetSkillProficiency(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_SetSkillProficiency_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetSkillProficiency(ctx, req.(*SetSkillProficiencyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_IncreaseSkill_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SkillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).IncreaseSkill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_IncreaseSkill_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).IncreaseSkill(ctx, req.(*SkillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_DecreaseSkill_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SkillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).DecreaseSkill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_DecreaseSkill_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).DecreaseSkill(ctx, req.(*SkillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_IncreaseDefense_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(AbilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).IncreaseDefense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_IncreaseDefense_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).IncreaseDefense(ctx, req.(*AbilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_DecreaseDefense_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(AbilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).DecreaseDefense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_DecreaseDefense_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).DecreaseDefense(ctx, req.(*AbilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetMilestoneChoice_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SetMilestoneChoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetMilestoneChoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_SetMilestoneChoice_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetMilestoneChoice(ctx, req.(*SetMilestoneChoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetProficiency_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SetProficiencyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetProficiency(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_SetProficiency_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetProficiency(ctx, req.(*SetProficiencyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetLevel_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SetLevelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetLevel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_SetLevel_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).SetLevel(ctx, req.(*SetLevelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RollPool_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RollPoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RollPool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_RollPool_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).RollPool(ctx, req.(*RollPoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RollCheck_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RollCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RollCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_RollCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).RollCheck(ctx, req.(*RollCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RollDamage_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RollDamageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RollDamage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_RollDamage_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).RollDamage(ctx, req.(*RollDamageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_GetRollLog_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RollLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).GetRollLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_GetRollLog_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).GetRollLog(ctx, req.(*RollLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ClearRollLog_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RollLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ClearRollLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ClearRollLog_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SheetServiceServer).ClearRollLog(ctx, req.(*RollLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SheetService_ServiceDesc is the grpc.ServiceDesc for the sheet service.
// Messages are plain structs carried by the JSON codec, so there is no
// proto file behind it.
var SheetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCharacter",
			Handler:    _SheetService_CreateCharacter_Handler,
		},
		{
			MethodName: "GetCharacter",
			Handler:    _SheetService_GetCharacter_Handler,
		},
		{
			MethodName: "ListCharacters",
			Handler:    _SheetService_ListCharacters_Handler,
		},
		{
			MethodName: "DeleteCharacter",
			Handler:    _SheetService_DeleteCharacter_Handler,
		},
		{
			MethodName: "GetSummary",
			Handler:    _SheetService_GetSummary_Handler,
		},
		{
			MethodName: "IncreaseAbility",
			Handler:    _SheetService_IncreaseAbility_Handler,
		},
		{
			MethodName: "DecreaseAbility",
			Handler:    _SheetService_DecreaseAbility_Handler,
		},
		{
			MethodName: "SetSkillProficiency",
			Handler:    _SheetService_SetSkillProficiency_Handler,
		},
		{
			MethodName: "IncreaseSkill",
			Handler:    _SheetService_IncreaseSkill_Handler,
		},
		{
			MethodName: "DecreaseSkill",
			Handler:    _SheetService_DecreaseSkill_Handler,
		},
		{
			MethodName: "IncreaseDefense",
			Handler:    _SheetService_IncreaseDefense_Handler,
		},
		{
			MethodName: "DecreaseDefense",
			Handler:    _SheetService_DecreaseDefense_Handler,
		},
		{
			MethodName: "SetMilestoneChoice",
			Handler:    _SheetService_SetMilestoneChoice_Handler,
		},
		{
			MethodName: "SetProficiency",
			Handler:    _SheetService_SetProficiency_Handler,
		},
		{
			MethodName: "SetLevel",
			Handler:    _SheetService_SetLevel_Handler,
		},
		{
			MethodName: "RollPool",
			Handler:    _SheetService_RollPool_Handler,
		},
		{
			MethodName: "RollCheck",
			Handler:    _SheetService_RollCheck_Handler,
		},
		{
			MethodName: "RollDamage",
			Handler:    _SheetService_RollDamage_Handler,
		},
		{
			MethodName: "GetRollLog",
			Handler:    _SheetService_GetRollLog_Handler,
		},
		{
			MethodName: "ClearRollLog",
			Handler:    _SheetService_ClearRollLog_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgsheet/v1alpha1/sheet.json",
}
